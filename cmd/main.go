// GitHub Copilot client for Go.
//
// This binary drives the copilot-client library from the command line and can
// also run a small proxy server exposing the Copilot API behind an
// OpenAI-compatible surface.
//
// CLI Usage:
//
//	The application supports the following command-line flags:
//
//	--models
//	  Lists the language models available to the authenticated account.
//
//	--agents
//	  Lists the available Copilot agents.
//
//	--ask="prompt" [--model="gpt-4o"]
//	  Sends a chat completion request and prints the reply.
//
//	--embed="some text"
//	  Requests an embedding for the given input and prints its dimensions.
//
//	--serve [--addr=":8080"]
//	  Runs the proxy server. Requires LLM_API_SECRET unless DISABLE_AUTH
//	  is set.
//
//	--issue-token="login"
//	  Issues a JWT access token for the proxy API, signed with
//	  LLM_API_SECRET.
//
//	--mask-token
//	  Resolves a credential and prints it in masked form, for checking
//	  which token the client would pick up without revealing it.
//
// Environment Variables:
//   - COPILOT_API_KEY: GitHub Copilot API token used directly as bearer
//   - GITHUB_TOKEN / COPILOT_OAUTH_TOKEN: OAuth tokens exchanged for an API token
//   - EDITOR_VERSION / EDITOR_PLUGIN_VERSION: editor identification headers
//   - LLM_API_SECRET: secret signing the proxy's own access tokens
//   - VALID_API_KEYS: comma-separated static API keys for the proxy
//   - DISABLE_AUTH: set to "true" or "1" to disable proxy authentication
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"copilot-client/internal/app"
	"copilot-client/internal/auth"
	"copilot-client/pkg/copilot"
	"copilot-client/pkg/models"
	"copilot-client/pkg/utils"

	"github.com/joho/godotenv"
)

// loadEnvFile loads environment variables from a .env file if present.
// It attempts to load from the current directory and parent directories
// up to the root directory.
func loadEnvFile() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment variables from .env file in current directory")
		return
	}

	workDir, err := os.Getwd()
	if err != nil {
		log.Printf("Warning: Could not determine current directory: %v", err)
		return
	}

	for dir := workDir; dir != "/"; dir = filepath.Dir(dir) {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err == nil {
				log.Printf("Loaded environment variables from %s", envPath)
				return
			}
		}
	}

	log.Println("No .env file found. Using existing environment variables.")
}

// newClient builds a Copilot client from the flags and environment. A model
// catalog is prefetched whenever chat completions may be issued.
func newClient(ctx context.Context, token, editorVersion string, withModels bool) (*copilot.Client, error) {
	if token != "" {
		client := copilot.NewClient(token, editorVersion)
		if withModels {
			if _, err := client.FetchModels(ctx); err != nil {
				return nil, err
			}
		}
		return client, nil
	}

	if withModels {
		return copilot.FromEnvWithModels(ctx, editorVersion)
	}
	return copilot.FromEnv(ctx, editorVersion)
}

// resolveMaskedToken runs the same credential lookup client construction
// uses and returns the result masked for safe display.
func resolveMaskedToken(override string) (string, error) {
	cred, err := copilot.DefaultResolver(override).Resolve()
	if err != nil {
		return "", err
	}
	return utils.MaskToken(cred.Token), nil
}

func runServer(ctx context.Context, client *copilot.Client, addr string) {
	secret := os.Getenv("LLM_API_SECRET")
	if secret == "" && os.Getenv("DISABLE_AUTH") == "" {
		log.Fatal("LLM_API_SECRET must be set in server mode (or set DISABLE_AUTH for local use)")
	}

	a := app.NewApp(client, secret)

	server := &http.Server{
		Addr:    addr,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Starting proxy server on %s...", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server gracefully stopped")
	}
}

func main() {
	loadEnvFile()

	ask := flag.String("ask", "", "Send a chat completion request with the given prompt")
	model := flag.String("model", "gpt-4o", "Model id for chat completion requests")
	listModels := flag.Bool("models", false, "List available language models")
	listAgents := flag.Bool("agents", false, "List available agents")
	embed := flag.String("embed", "", "Request an embedding for the given input")
	serve := flag.Bool("serve", false, "Run the proxy server")
	addr := flag.String("addr", ":8080", "Listen address for server mode")
	editorVersion := flag.String("editor-version", "", "Editor version identifier (defaults to EDITOR_VERSION, then vscode/1.99.2)")
	token := flag.String("token", "", "Copilot API token (overrides environment and config lookup)")
	maskToken := flag.Bool("mask-token", false, "Print the resolved credential in masked form and exit")
	issueToken := flag.String("issue-token", "", "Issue a proxy access token for the given login")
	disableAuth := flag.Bool("disable-auth", false, "Disable proxy API authentication")

	flag.Parse()

	if *disableAuth {
		os.Setenv("DISABLE_AUTH", "true")
		log.Println("Proxy authentication is disabled - all requests will be accepted")
	}

	if *maskToken {
		masked, err := resolveMaskedToken(*token)
		if err != nil {
			log.Fatalf("Failed to resolve a credential: %v", err)
		}
		fmt.Println(masked)
		return
	}

	if *issueToken != "" {
		secret := os.Getenv("LLM_API_SECRET")
		if secret == "" {
			log.Fatal("LLM_API_SECRET must be set to issue access tokens")
		}
		accessToken, err := auth.CreateAccessToken(*issueToken, secret)
		if err != nil {
			log.Fatalf("Failed to issue access token: %v", err)
		}
		fmt.Println(accessToken)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		cancel()
	}()

	needsModels := *ask != "" || *listModels || *serve
	client, err := newClient(ctx, *token, *editorVersion, needsModels)
	if err != nil {
		log.Fatalf("Failed to create Copilot client: %v", err)
	}

	switch {
	case *listModels:
		for _, m := range client.Models() {
			fmt.Printf("%s\t%s\n", m.ID, m.Name)
		}

	case *listAgents:
		agents, err := client.FetchAgents(ctx)
		if err != nil {
			log.Fatalf("Failed to fetch agents: %v", err)
		}
		for _, a := range agents {
			fmt.Printf("%s\t%s\t%s\n", a.ID, a.Name, a.Description)
		}

	case *ask != "":
		msgs := []models.Message{{Role: "user", Content: *ask}}
		resp, err := client.ChatCompletion(ctx, msgs, *model)
		if err != nil {
			log.Fatalf("Chat completion failed: %v", err)
		}
		for _, choice := range resp.Choices {
			fmt.Println(choice.Message.Content)
		}

	case *embed != "":
		embeddings, err := client.GetEmbeddings(ctx, []string{*embed})
		if err != nil {
			log.Fatalf("Embeddings request failed: %v", err)
		}
		for _, e := range embeddings {
			fmt.Printf("embedding %d: %d dimensions\n", e.Index, len(e.Embedding))
		}

	case *serve:
		runServer(ctx, client, *addr)

	default:
		flag.Usage()
	}
}
