package copilot

import (
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name              string
		envVars           map[string]string
		wantEditorVersion string
		wantPluginVersion string
	}{
		{
			name: "environment overrides",
			envVars: map[string]string{
				"EDITOR_VERSION":        "Neovim/0.9.0",
				"EDITOR_PLUGIN_VERSION": "CopilotChat.nvim/3.0",
			},
			wantEditorVersion: "Neovim/0.9.0",
			wantPluginVersion: "CopilotChat.nvim/3.0",
		},
		{
			name:              "defaults when unset",
			envVars:           map[string]string{},
			wantEditorVersion: defaultEditorVersion,
			wantPluginVersion: defaultPluginVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR_VERSION", "")
			t.Setenv("EDITOR_PLUGIN_VERSION", "")
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			got := LoadConfig()

			if got.EditorVersion != tt.wantEditorVersion {
				t.Errorf("LoadConfig().EditorVersion = %q, want %q", got.EditorVersion, tt.wantEditorVersion)
			}
			if got.EditorPluginVersion != tt.wantPluginVersion {
				t.Errorf("LoadConfig().EditorPluginVersion = %q, want %q", got.EditorPluginVersion, tt.wantPluginVersion)
			}
		})
	}
}
