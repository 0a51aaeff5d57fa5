package copilot

import (
	"copilot-client/pkg/utils"
)

const (
	// defaultAPIBase is the GitHub Copilot API host.
	defaultAPIBase = "https://api.githubcopilot.com"
	// defaultTokenURL exchanges a GitHub OAuth token for a Copilot API token.
	defaultTokenURL = "https://api.github.com/copilot_internal/v2/token"

	defaultEditorVersion = "vscode/1.99.2"
	defaultPluginVersion = "copilot-chat/0.26.3"
	integrationID        = "vscode-chat"
)

// Config carries the editor identification sent with every Copilot request.
type Config struct {
	// EditorVersion identifies the editor (e.g., "vscode/1.99.2")
	EditorVersion string
	// EditorPluginVersion identifies the plugin version (e.g., "copilot-chat/0.26.3")
	EditorPluginVersion string
}

// LoadConfig builds the request configuration from environment variables,
// falling back to defaults matching a current VS Code install.
//
// Recognized variables:
//   - EDITOR_VERSION
//   - EDITOR_PLUGIN_VERSION
func LoadConfig() Config {
	return Config{
		EditorVersion:       utils.GetEnvWithDefault("EDITOR_VERSION", defaultEditorVersion),
		EditorPluginVersion: utils.GetEnvWithDefault("EDITOR_PLUGIN_VERSION", defaultPluginVersion),
	}
}
