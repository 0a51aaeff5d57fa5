package copilot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"copilot-client/pkg/models"
)

const (
	// embeddingModel is the model used for all embedding requests.
	embeddingModel = "text-embedding-3-small"
	// embeddingDimensions is the vector size requested from the API.
	embeddingDimensions = 512
)

// ChatCompletion sends a chat completion request for the given messages and
// model. The model id must be present in the catalog fetched for this client
// (case-sensitive exact match); otherwise ErrModelNotFound is returned
// without any network call.
func (c *Client) ChatCompletion(ctx context.Context, msgs []models.Message, modelID string) (*models.ChatResponse, error) {
	if len(msgs) == 0 {
		return nil, errors.New("chat completion requires at least one message")
	}
	if !c.hasModel(modelID) {
		return nil, fmt.Errorf("%w: %q", ErrModelNotFound, modelID)
	}

	reqBody := models.ChatRequest{
		Model:       modelID,
		Messages:    msgs,
		N:           1,
		TopP:        1.0,
		Stream:      false,
		Temperature: 0.5,
	}

	var resp models.ChatResponse
	if err := c.do(ctx, http.MethodPost, "/chat/completions", reqBody, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetEmbeddings generates one embedding per input string. Results are ordered
// to match the inputs.
func (c *Client) GetEmbeddings(ctx context.Context, inputs []string) ([]models.Embedding, error) {
	if len(inputs) == 0 {
		return nil, errors.New("embeddings request requires at least one input")
	}

	reqBody := models.EmbeddingRequest{
		Dimensions: embeddingDimensions,
		Input:      inputs,
		Model:      embeddingModel,
	}

	var resp models.EmbeddingResponse
	if err := c.do(ctx, http.MethodPost, "/embeddings", reqBody, &resp); err != nil {
		return nil, err
	}

	embeddings := resp.Data
	sort.Slice(embeddings, func(i, j int) bool {
		return embeddings[i].Index < embeddings[j].Index
	})

	return embeddings, nil
}
