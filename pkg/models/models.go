// Package models defines the wire types exchanged with the GitHub Copilot API.
// These structures match the JSON bodies of the models, agents, chat completion
// and embeddings endpoints and are shared by the client and the proxy server.
package models

// TokenResponse is the body returned by the Copilot token exchange endpoint
// (GET https://api.github.com/copilot_internal/v2/token). ExpiresAt is a Unix
// timestamp.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// Model describes a language model advertised by the Copilot API.
type Model struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Version         string `json:"version,omitempty"`
	Tokenizer       string `json:"tokenizer,omitempty"`
	MaxInputTokens  int    `json:"max_input_tokens,omitempty"`
	MaxOutputTokens int    `json:"max_output_tokens,omitempty"`
}

// ModelsResponse is the body of GET https://api.githubcopilot.com/models.
type ModelsResponse struct {
	Data []Model `json:"data"`
}

// Agent describes a Copilot agent.
type Agent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AgentsResponse is the body of GET https://api.githubcopilot.com/agents.
type AgentsResponse struct {
	Agents []Agent `json:"agents"`
}

// Message is a single chat message. Role is one of "system", "user" or
// "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST https://api.githubcopilot.com/chat/completions.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	N           int       `json:"n"`
	TopP        float64   `json:"top_p"`
	Stream      bool      `json:"stream"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// TokenUsage reports token consumption for a completion.
type TokenUsage struct {
	TotalTokens int `json:"total_tokens"`
}

// ChatChoice is one candidate completion within a ChatResponse.
type ChatChoice struct {
	Message      Message     `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// ChatResponse is the body returned by the chat completions endpoint.
type ChatResponse struct {
	Choices []ChatChoice `json:"choices"`
}

// EmbeddingRequest is the body of POST https://api.githubcopilot.com/embeddings.
type EmbeddingRequest struct {
	Dimensions int      `json:"dimensions"`
	Input      []string `json:"input"`
	Model      string   `json:"model"`
}

// Embedding is a single embedding vector. Index refers to the position of the
// corresponding input string in the request.
type Embedding struct {
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

// EmbeddingResponse is the body returned by the embeddings endpoint.
type EmbeddingResponse struct {
	Data []Embedding `json:"data"`
}
