// Package copilot implements a client for the GitHub Copilot API.
//
// # Authentication
//
// A client needs a Copilot API token. Credential lookup follows a prioritized
// chain of sources, stopping at the first one that yields a value:
//
//  1. Explicit token supplied by the caller
//  2. COPILOT_API_KEY environment variable (a ready API token)
//  3. GITHUB_TOKEN or COPILOT_OAUTH_TOKEN environment variables (OAuth tokens)
//  4. github-copilot/hosts.json or apps.json in the user config directory
//
// OAuth tokens are exchanged once, at client construction, for a Copilot API
// token via https://api.github.com/copilot_internal/v2/token.
//
// # Endpoints
//
//   - GET /models — list available language models
//   - GET /agents — list available agents
//   - POST /chat/completions — chat completion
//   - POST /embeddings — embedding generation
//
// Every request carries the bearer token together with the Editor-Version,
// Editor-Plugin-Version, Copilot-Integration-ID, User-Agent and X-Request-ID
// headers the Copilot service requires.
//
// # Model validation
//
// Chat completions are validated against the model catalog cached on the
// client: a request naming a model absent from the catalog fails with
// ErrModelNotFound before any network call. The catalog is fetched once per
// client instance and never refreshed.
//
// The client performs no retries and no logging; all failures are returned to
// the caller as typed errors (see ErrTokenNotFound, ErrModelNotFound,
// HTTPError and DecodeError).
package copilot
