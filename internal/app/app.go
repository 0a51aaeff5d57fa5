// Package app wires the proxy's HTTP surface: a small OpenAI-compatible API
// backed by the Copilot client. Callers authenticate with either a static API
// key or a JWT access token issued for this proxy.
package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"copilot-client/internal/auth"
	"copilot-client/pkg/copilot"
	"copilot-client/pkg/models"
)

// App represents the proxy application with its router and the Copilot
// client every handler dispatches through.
type App struct {
	Router *http.ServeMux
	Client *copilot.Client
	Secret string
}

// NewApp creates and initializes the proxy application. secret signs and
// verifies the proxy's own JWT access tokens.
func NewApp(client *copilot.Client, secret string) *App {
	app := &App{
		Router: http.NewServeMux(),
		Client: client,
		Secret: secret,
	}

	app.initializeRoutes()
	return app
}

func (a *App) initializeRoutes() {
	a.Router.HandleFunc("/status", a.handleStatus)
	a.Router.HandleFunc("/models", a.handleModels)
	a.Router.HandleFunc("/agents", a.handleAgents)
	a.Router.HandleFunc("/v1/chat/completions", a.handleChatCompletions)
	a.Router.HandleFunc("/v1/embeddings", a.handleEmbeddings)
}

// authorize validates the bearer credential on a request. Both static API
// keys (VALID_API_KEYS) and JWT access tokens are accepted.
func (a *App) authorize(r *http.Request) error {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		// VerifyAppAPIKey honors DISABLE_AUTH for local use.
		if auth.VerifyAppAPIKey("") {
			return nil
		}
		return errors.New("missing authorization header")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if auth.VerifyAppAPIKey(token) {
		return nil
	}

	if _, err := auth.ValidateAccessToken(token, a.Secret); err != nil {
		return err
	}
	return nil
}

func (a *App) unauthorized(w http.ResponseWriter, err error) {
	if errors.Is(err, auth.ErrTokenExpired) {
		w.Header().Set("X-Token-Expired", "true")
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

// writeUpstreamError maps client errors to proxy response codes: an unknown
// model is the caller's fault, an upstream failure keeps its status, and a
// body we could not decode is a bad gateway.
func writeUpstreamError(w http.ResponseWriter, err error) {
	var httpErr *copilot.HTTPError
	var decodeErr *copilot.DecodeError

	switch {
	case errors.Is(err, copilot.ErrModelNotFound):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &httpErr) && httpErr.StatusCode != 0:
		http.Error(w, err.Error(), httpErr.StatusCode)
	case errors.As(err, &decodeErr):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (a *App) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"models": len(a.Client.Models()),
	})
}

func (a *App) handleModels(w http.ResponseWriter, r *http.Request) {
	if err := a.authorize(r); err != nil {
		a.unauthorized(w, err)
		return
	}

	list, err := a.Client.FetchModels(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ModelsResponse{Data: list})
}

func (a *App) handleAgents(w http.ResponseWriter, r *http.Request) {
	if err := a.authorize(r); err != nil {
		a.unauthorized(w, err)
		return
	}

	list, err := a.Client.FetchAgents(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.AgentsResponse{Agents: list})
}

// completionParams is the accepted request body for /v1/chat/completions.
// Extra OpenAI fields are ignored; the client applies its own defaults.
type completionParams struct {
	Model    string           `json:"model"`
	Messages []models.Message `json:"messages"`
}

func (a *App) handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	if err := a.authorize(r); err != nil {
		a.unauthorized(w, err)
		return
	}

	var params completionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(params.Messages) == 0 {
		http.Error(w, "request must include messages", http.StatusBadRequest)
		return
	}

	resp, err := a.Client.ChatCompletion(r.Context(), params.Messages, params.Model)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// embeddingParams is the accepted request body for /v1/embeddings.
type embeddingParams struct {
	Input []string `json:"input"`
}

func (a *App) handleEmbeddings(w http.ResponseWriter, r *http.Request) {
	if err := a.authorize(r); err != nil {
		a.unauthorized(w, err)
		return
	}

	var params embeddingParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(params.Input) == 0 {
		http.Error(w, "request must include input", http.StatusBadRequest)
		return
	}

	embeddings, err := a.Client.GetEmbeddings(r.Context(), params.Input)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.EmbeddingResponse{Data: embeddings})
}
