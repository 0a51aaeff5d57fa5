// Package copilotclient documents the copilot-client module, a Go client for
// the GitHub Copilot API.
//
// # GitHub Copilot API Integration
//
// The module authenticates against GitHub Copilot, discovers the available
// models and agents, and issues chat completion and embedding requests. The
// importable client lives in pkg/copilot; cmd/ builds a CLI that can also run
// a small OpenAI-compatible proxy server.
//
// # API Endpoints
//
// The GitHub Copilot API exposes several endpoints:
//
//   - Models: https://api.githubcopilot.com/models
//     Lists the language models available to the account
//
//   - Agents: https://api.githubcopilot.com/agents
//     Lists the available Copilot agents
//
//   - Chat Completions: https://api.githubcopilot.com/chat/completions
//     The main endpoint for chat completions
//
//   - Embeddings: https://api.githubcopilot.com/embeddings
//     Generates embedding vectors for input strings
//
//   - Token Exchange: https://api.github.com/copilot_internal/v2/token
//     Exchanges a GitHub OAuth token for a Copilot API token
//
// # Authentication
//
// Credential lookup follows a prioritized chain, stopping at the first source
// that yields a value:
//
//  1. Explicit token supplied by the caller
//  2. COPILOT_API_KEY environment variable (a ready API token)
//  3. GITHUB_TOKEN or COPILOT_OAUTH_TOKEN environment variables
//  4. github-copilot/hosts.json or apps.json in the user config directory
//
// OAuth tokens are exchanged once, at client construction, for a Copilot API
// token.
//
// # Copilot API Token Format
//
// The Copilot API token format is:
// tid=token_id;exp=expiration_timestamp;sku=subscription_type;proxy-ep=endpoint;st=status;
// followed by various feature flags like chat=1;cit=1;etc.
//
// # Required Headers
//
// The GitHub Copilot API requires specific headers to function properly:
//
//   - Authorization: Bearer {COPILOT_API_TOKEN}
//   - Content-Type: application/json
//   - Editor-Version: Editor identifier (e.g., "vscode/1.99.2")
//   - Editor-Plugin-Version: Plugin version (e.g., "copilot-chat/0.26.3")
//   - Copilot-Integration-Id: Integration identifier (e.g., "vscode-chat")
//   - User-Agent: Client identifier (e.g., "GitHubCopilotChat/0.26.3")
//   - X-Request-Id: Unique identifier for the request
//
// # Environment Variables
//
//   - COPILOT_API_KEY: GitHub Copilot API token
//   - GITHUB_TOKEN: GitHub OAuth token to exchange for a Copilot API token
//   - COPILOT_OAUTH_TOKEN: Alternative to GITHUB_TOKEN
//   - EDITOR_VERSION: Editor identifier for API requests
//   - EDITOR_PLUGIN_VERSION: Plugin version for API requests
//   - LLM_API_SECRET: Secret for the proxy server's own access tokens
//   - VALID_API_KEYS: Comma-separated static API keys for the proxy server
//   - DISABLE_AUTH: Set to "true" or "1" to disable proxy authentication
//
// For more details, run the CLI with the --help flag.
package copilotclient
