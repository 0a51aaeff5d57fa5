package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"copilot-client/pkg/copilot"
	"copilot-client/pkg/utils"
)

func TestResolveMaskedToken(t *testing.T) {
	t.Setenv("COPILOT_API_KEY", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("COPILOT_OAUTH_TOKEN", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := resolveMaskedToken(""); !errors.Is(err, copilot.ErrTokenNotFound) {
		t.Fatalf("resolveMaskedToken() error = %v, want ErrTokenNotFound", err)
	}

	apiKey := fmt.Sprintf("tid=abcdef123456;exp=%d;sku=free", time.Now().Add(time.Hour).Unix())
	t.Setenv("COPILOT_API_KEY", apiKey)

	masked, err := resolveMaskedToken("")
	if err != nil {
		t.Fatalf("resolveMaskedToken() error = %v", err)
	}
	if masked != utils.MaskToken(apiKey) {
		t.Errorf("resolveMaskedToken() = %q, want masked API key", masked)
	}
	if strings.Contains(masked, "abcdef123456") {
		t.Errorf("resolveMaskedToken() = %q, leaks the raw token", masked)
	}

	masked, err = resolveMaskedToken("explicit-override-token")
	if err != nil {
		t.Fatalf("resolveMaskedToken() error = %v", err)
	}
	if masked != utils.MaskToken("explicit-override-token") {
		t.Errorf("resolveMaskedToken() = %q, want masked override", masked)
	}
}
