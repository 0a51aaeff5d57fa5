package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("UTILS_TEST_SET", "value")
	os.Unsetenv("UTILS_TEST_UNSET")

	if got := GetEnvWithDefault("UTILS_TEST_SET", "fallback"); got != "value" {
		t.Errorf("GetEnvWithDefault() = %q, want %q", got, "value")
	}
	if got := GetEnvWithDefault("UTILS_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnvWithDefault() = %q, want %q", got, "fallback")
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "short token fully masked",
			token: "abc",
			want:  "***",
		},
		{
			name:  "standard token keeps edges",
			token: "ghu_0123456789abcdef",
			want:  "ghu_...cdef",
		},
		{
			name:  "tid token keeps prefix",
			token: "tid=0123456789abcdef;exp=1700000000;sku=free",
			want:  "tid=0123...cdef;***",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskToken(tt.token); got != tt.want {
				t.Errorf("MaskToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseCopilotToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{
			name:    "valid token",
			token:   "tid=abc123;exp=1700000000;sku=free_educational",
			wantErr: false,
		},
		{
			name:    "missing tid",
			token:   "exp=1700000000;sku=free",
			wantErr: true,
		},
		{
			name:    "malformed part",
			token:   "tid=abc;notakeyvalue",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCopilotToken(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCopilotToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got["tid"] == "" {
				t.Error("ParseCopilotToken() returned empty tid")
			}
		})
	}
}

func TestValidateCopilotToken(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "valid unexpired token",
			token: fmt.Sprintf("tid=abc;exp=%d;sku=free", future),
			want:  true,
		},
		{
			name:  "expired token",
			token: fmt.Sprintf("tid=abc;exp=%d;sku=free", past),
			want:  false,
		},
		{
			name:  "not a tid token",
			token: "ghu_plainoauthtoken",
			want:  false,
		},
		{
			name:  "missing expiration",
			token: "tid=abc;sku=free",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCopilotToken(tt.token); got != tt.want {
				t.Errorf("ValidateCopilotToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if got != "/custom/config" {
		t.Errorf("ConfigPath() = %q, want %q", got, "/custom/config")
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	got, err = ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if got != filepath.Join("/home/tester", ".config") {
		t.Errorf("ConfigPath() = %q, want %q", got, filepath.Join("/home/tester", ".config"))
	}
}

func TestOAuthTokenFromFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{
			name:    "hosts entry with token",
			content: `{"github.com":{"oauth_token":"ghu_secret","user":"octocat"}}`,
			want:    "ghu_secret",
		},
		{
			name:    "keyed by app id",
			content: `{"github.com:Iv1.abcdef":{"oauth_token":"ghu_other"}}`,
			want:    "ghu_other",
		},
		{
			name:    "no matching host",
			content: `{"example.com":{"oauth_token":"nope"}}`,
			wantErr: true,
		},
		{
			name:    "empty token value",
			content: `{"github.com":{"oauth_token":""}}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			content: `{not json`,
			wantErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, fmt.Sprintf("hosts-%d.json", i))
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}

			got, err := OAuthTokenFromFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("OAuthTokenFromFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("OAuthTokenFromFile() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := OAuthTokenFromFile(filepath.Join(dir, "does-not-exist.json"))
		if err == nil || !strings.Contains(err.Error(), "no such file") {
			t.Errorf("expected file-not-found error, got %v", err)
		}
	})
}
