package copilot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"copilot-client/pkg/models"
)

// ExchangeOAuthToken trades a GitHub OAuth token for a Copilot API token.
// The returned token is the bearer credential for all Copilot API calls; its
// expiration is a Unix timestamp.
func ExchangeOAuthToken(ctx context.Context, client *http.Client, oauthToken string) (models.TokenResponse, error) {
	return exchangeOAuthToken(ctx, client, defaultTokenURL, oauthToken)
}

func exchangeOAuthToken(ctx context.Context, client *http.Client, tokenURL, oauthToken string) (models.TokenResponse, error) {
	var tokenResp models.TokenResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenURL, nil)
	if err != nil {
		return tokenResp, fmt.Errorf("creating token exchange request: %w", err)
	}

	req.Header.Set("Authorization", "token "+oauthToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "copilot-client")

	resp, err := client.Do(req)
	if err != nil {
		return tokenResp, &HTTPError{Status: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return tokenResp, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return tokenResp, &DecodeError{Err: err}
	}

	return tokenResp, nil
}
