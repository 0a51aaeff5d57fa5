package copilot

import (
	"context"
	"net/http"

	"copilot-client/pkg/models"
)

// FetchModels retrieves the available language models from the Copilot API.
// The fetch happens once per client instance; the outcome, success or
// failure, is cached and returned on every subsequent call. The cached slice
// is never mutated afterwards, so concurrent reads need no locking.
func (c *Client) FetchModels(ctx context.Context) ([]models.Model, error) {
	c.modelsOnce.Do(func() {
		var resp models.ModelsResponse
		if err := c.do(ctx, http.MethodGet, "/models", nil, &resp); err != nil {
			c.modelsErr = err
			return
		}
		c.models = resp.Data
	})
	return c.models, c.modelsErr
}

// FetchAgents retrieves the available agents from the Copilot API. Cached the
// same way as FetchModels.
func (c *Client) FetchAgents(ctx context.Context) ([]models.Agent, error) {
	c.agentsOnce.Do(func() {
		var resp models.AgentsResponse
		if err := c.do(ctx, http.MethodGet, "/agents", nil, &resp); err != nil {
			c.agentsErr = err
			return
		}
		c.agents = resp.Agents
	})
	return c.agents, c.agentsErr
}

// Models returns the cached model catalog. Empty until FetchModels (or
// FromEnvWithModels) has succeeded.
func (c *Client) Models() []models.Model {
	return c.models
}

// Agents returns the cached agent list. Empty until FetchAgents has
// succeeded.
func (c *Client) Agents() []models.Agent {
	return c.agents
}

// hasModel reports whether the cached catalog contains the given model id.
// The match is case-sensitive and exact.
func (c *Client) hasModel(modelID string) bool {
	for _, m := range c.models {
		if m.ID == modelID {
			return true
		}
	}
	return false
}
