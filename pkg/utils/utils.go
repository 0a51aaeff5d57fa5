package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvWithDefault retrieves an environment variable or returns a default
// value if not set.
func GetEnvWithDefault(name, defaultValue string) string {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	return value
}

// MaskToken masks a token for display by showing only the first and last few
// characters. This is used for logging token material without revealing it.
func MaskToken(token string) string {
	if len(token) < 10 {
		return "***" // Too short to safely show anything
	}

	// For tokens with "tid=" prefix, keep that visible
	if strings.HasPrefix(token, "tid=") {
		parts := strings.Split(token, ";")
		if len(parts) > 0 {
			tidPart := parts[0]
			if len(tidPart) > 12 {
				return tidPart[:8] + "..." + tidPart[len(tidPart)-4:] + ";***"
			}
		}
	}

	return token[:4] + "..." + token[len(token)-4:]
}

// ParseCopilotToken parses a Copilot API token of the form
// "tid=<id>;exp=<unix>;sku=<plan>;..." into its key/value components.
func ParseCopilotToken(token string) (map[string]string, error) {
	result := make(map[string]string)

	for _, part := range strings.Split(token, ";") {
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid token part: %s", part)
		}

		result[kv[0]] = kv[1]
	}

	if _, ok := result["tid"]; !ok {
		return nil, fmt.Errorf("missing tid in token")
	}

	return result, nil
}

// ValidateCopilotToken checks if a tid-format Copilot token is well formed
// and not expired. Tokens that do not use the tid format are rejected.
func ValidateCopilotToken(token string) bool {
	parsed, err := ParseCopilotToken(token)
	if err != nil {
		return false
	}

	expStr, ok := parsed["exp"]
	if !ok {
		return false
	}

	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return false
	}

	return time.Now().Unix() <= exp
}
