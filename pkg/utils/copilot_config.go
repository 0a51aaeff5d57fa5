// Package utils provides helper functionality shared across the module:
// configuration-directory resolution, Copilot token parsing and masking, and
// environment-variable helpers.
package utils

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNoOAuthToken is returned when a Copilot config file exists but contains
// no usable oauth_token entry.
var ErrNoOAuthToken = errors.New("no oauth_token found in config file")

// hostEntry is the per-host record stored in the github-copilot config files.
// Both hosts.json and apps.json map host keys (containing "github.com") to an
// object carrying the OAuth token.
type hostEntry struct {
	OAuthToken string `json:"oauth_token"`
}

// ConfigPath returns the user configuration directory.
//
// Resolution order:
//  1. XDG_CONFIG_HOME, if set and non-empty
//  2. LOCALAPPDATA on Windows
//  3. $HOME/.config on Unix-like systems
func ConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}

	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return local, nil
		}
		return "", errors.New("LOCALAPPDATA environment variable not set")
	}

	home := os.Getenv("HOME")
	if home == "" {
		return "", errors.New("HOME environment variable not set")
	}
	return filepath.Join(home, ".config"), nil
}

// CopilotConfigFiles returns the well-known GitHub Copilot config file paths
// in the order they should be consulted. The official clients write
// hosts.json; older releases used apps.json.
func CopilotConfigFiles() ([]string, error) {
	configDir, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	return []string{
		filepath.Join(configDir, "github-copilot", "hosts.json"),
		filepath.Join(configDir, "github-copilot", "apps.json"),
	}, nil
}

// OAuthTokenFromFile reads a github-copilot config file and returns the OAuth
// token stored under the first key containing "github.com".
//
// Returns ErrNoOAuthToken if the file parses but holds no usable token.
func OAuthTokenFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var hosts map[string]hostEntry
	if err := json.Unmarshal(data, &hosts); err != nil {
		return "", err
	}

	for key, entry := range hosts {
		if strings.Contains(key, "github.com") && entry.OAuthToken != "" {
			return entry.OAuthToken, nil
		}
	}

	return "", ErrNoOAuthToken
}
