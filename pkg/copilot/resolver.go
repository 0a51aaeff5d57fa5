package copilot

import (
	"os"
	"strings"

	"copilot-client/pkg/utils"
)

// Credential is a bearer token obtained from one of the resolver sources.
// Exchanged reports whether Token is already a Copilot API token; when false
// it is a GitHub OAuth token that still needs exchanging (see
// ExchangeOAuthToken).
type Credential struct {
	Token     string
	Exchanged bool
}

// Source is one strategy for locating a credential. Lookup reports whether a
// usable credential was found; failures to read or parse an underlying file
// are treated as "not found" rather than surfaced as errors.
type Source interface {
	Name() string
	Lookup() (Credential, bool)
}

// Resolver tries an ordered list of credential sources and returns the first
// hit. Later sources are not consulted once one succeeds.
type Resolver struct {
	sources []Source
}

// NewResolver creates a resolver over the given sources, tried in order.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// DefaultResolver returns the standard credential chain: an optional explicit
// override, the COPILOT_API_KEY / GITHUB_TOKEN / COPILOT_OAUTH_TOKEN
// environment variables, then the github-copilot config files. An empty
// override is skipped.
func DefaultResolver(override string) *Resolver {
	sources := []Source{
		StaticSource{Token: override, Exchanged: true},
		EnvSource{Variable: "COPILOT_API_KEY", Exchanged: true},
		EnvSource{Variable: "GITHUB_TOKEN"},
		EnvSource{Variable: "COPILOT_OAUTH_TOKEN"},
	}

	if files, err := utils.CopilotConfigFiles(); err == nil {
		for _, path := range files {
			sources = append(sources, ConfigFileSource{Path: path})
		}
	}

	return NewResolver(sources...)
}

// Resolve returns the first credential found, or ErrTokenNotFound if every
// source comes up empty.
func (r *Resolver) Resolve() (Credential, error) {
	for _, source := range r.sources {
		if cred, ok := source.Lookup(); ok {
			return cred, nil
		}
	}
	return Credential{}, ErrTokenNotFound
}

// StaticSource yields a fixed token supplied by the caller. An empty token
// means "not found" so the chain moves on. Exchanged has the same meaning as
// on EnvSource: true marks the token as a ready Copilot API token, false as
// an OAuth token that still needs exchanging.
type StaticSource struct {
	Token     string
	Exchanged bool
}

// Name identifies the source in error messages and debug output.
func (s StaticSource) Name() string { return "explicit token" }

// Lookup returns the configured token if non-empty.
func (s StaticSource) Lookup() (Credential, bool) {
	if s.Token == "" {
		return Credential{}, false
	}
	return Credential{Token: s.Token, Exchanged: s.Exchanged}, true
}

// EnvSource reads a token from an environment variable. Quotes are stripped
// so values copied from .env files work unchanged. Exchanged marks variables
// that hold a ready Copilot API token; tid-format tokens that have already
// expired are skipped so the chain can fall through to a fresher source.
type EnvSource struct {
	Variable  string
	Exchanged bool
}

func (s EnvSource) Name() string { return "environment variable " + s.Variable }

func (s EnvSource) Lookup() (Credential, bool) {
	token := strings.Trim(os.Getenv(s.Variable), "'\"")
	if token == "" {
		return Credential{}, false
	}
	if strings.HasPrefix(token, "tid=") && !utils.ValidateCopilotToken(token) {
		return Credential{}, false
	}
	return Credential{Token: token, Exchanged: s.Exchanged}, true
}

// ConfigFileSource reads an OAuth token from a github-copilot config file.
// Missing or malformed files are treated as "not found".
type ConfigFileSource struct {
	Path string
}

func (s ConfigFileSource) Name() string { return "config file " + s.Path }

func (s ConfigFileSource) Lookup() (Credential, bool) {
	token, err := utils.OAuthTokenFromFile(s.Path)
	if err != nil {
		return Credential{}, false
	}
	return Credential{Token: token}, true
}
