package copilot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"copilot-client/pkg/models"

	"github.com/google/uuid"
)

// Client talks to the GitHub Copilot API. The credential and editor
// identification are fixed at construction; the model and agent catalogs are
// fetched at most once per instance and are safe for concurrent reads
// afterwards.
type Client struct {
	httpClient    *http.Client
	apiToken      string
	editorVersion string
	cfg           Config

	apiBase  string
	tokenURL string

	modelsOnce sync.Once
	models     []models.Model
	modelsErr  error
	agentsOnce sync.Once
	agents     []models.Agent
	agentsErr  error
}

// NewClient creates a client that uses the given Copilot API token directly
// as its bearer credential. editorVersion identifies the calling editor
// (e.g., "Neovim/0.9.0") and is sent with every request; when empty, the
// EDITOR_VERSION environment variable or the built-in default is used.
func NewClient(apiToken, editorVersion string) *Client {
	cfg := LoadConfig()
	if editorVersion == "" {
		editorVersion = cfg.EditorVersion
	}
	return &Client{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		apiToken:      apiToken,
		editorVersion: editorVersion,
		cfg:           cfg,
		apiBase:       defaultAPIBase,
		tokenURL:      defaultTokenURL,
	}
}

// NewClientWithBaseURL is NewClient with the API base overridden. Useful when
// requests must go through a proxy endpoint instead of the public Copilot
// host.
func NewClientWithBaseURL(apiToken, editorVersion, baseURL string) *Client {
	c := NewClient(apiToken, editorVersion)
	c.apiBase = strings.TrimSuffix(baseURL, "/")
	return c
}

// FromEnv constructs a client by resolving a credential from the environment
// and the local github-copilot config files. OAuth credentials are exchanged
// once for a Copilot API token. The model catalog is not prefetched; use
// FromEnvWithModels when chat completions will be issued.
func FromEnv(ctx context.Context, editorVersion string) (*Client, error) {
	cred, err := DefaultResolver("").Resolve()
	if err != nil {
		return nil, err
	}

	client := NewClient(cred.Token, editorVersion)
	if !cred.Exchanged {
		tokenResp, err := exchangeOAuthToken(ctx, client.httpClient, client.tokenURL, cred.Token)
		if err != nil {
			return nil, fmt.Errorf("exchanging OAuth token: %w", err)
		}
		client.apiToken = tokenResp.Token
	}

	return client, nil
}

// FromEnvWithModels is FromEnv plus an immediate catalog fetch, so chat
// completion requests can be validated against the available models.
func FromEnvWithModels(ctx context.Context, editorVersion string) (*Client, error) {
	client, err := FromEnv(ctx, editorVersion)
	if err != nil {
		return nil, err
	}

	if _, err := client.FetchModels(ctx); err != nil {
		return nil, err
	}

	return client, nil
}

// headers returns the header set the Copilot API requires on every call.
func (c *Client) headers() http.Header {
	h := make(http.Header)
	h.Set("Authorization", "Bearer "+c.apiToken)
	h.Set("Editor-Version", c.editorVersion)
	h.Set("Editor-Plugin-Version", c.cfg.EditorPluginVersion)
	h.Set("Copilot-Integration-Id", integrationID)
	h.Set("User-Agent", "GitHubCopilotChat/"+strings.TrimPrefix(c.cfg.EditorPluginVersion, "copilot-chat/"))
	h.Set("Accept", "application/json")
	h.Set("X-Request-Id", requestID())
	return h
}

// requestID creates a unique identifier for a single Copilot API call.
func requestID() string {
	return fmt.Sprintf("%s-%s", time.Now().UTC().Format("20060102T150405.000Z"), uuid.New().String()[:8])
}

// do issues one request against the Copilot API and decodes the JSON response
// into out. A non-2xx status surfaces as *HTTPError, a body that fails to
// decode as *DecodeError.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header = c.headers()
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &HTTPError{Status: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(respBody),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}
