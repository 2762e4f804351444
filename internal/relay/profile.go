package relay

import (
	"fmt"
	"strings"
)

// DebugVar enables the debug log for every variant.
const DebugVar = "SIGAGENT_DEBUG"

// Service sub-paths derived from the base URL by agent variants.
const (
	hookPathSuffix = "/v0/claude/hook"
	logPathSuffix  = "/v0/claude/log"
)

// Profile describes one handler variant: which environment variables it
// reads, whether they are required, how endpoints are derived and which
// relay features are enabled. The variant binaries differ only in their
// Profile.
type Profile struct {
	Name      string
	UserAgent string

	// URLVar names the base URL variable. TokenVar names the bearer token
	// variable, unless HeadersVar is set, in which case the token is
	// extracted from an OTLP-style comma-separated header list instead.
	URLVar     string
	TokenVar   string
	HeadersVar string

	URLRequired   bool
	TokenRequired bool

	// DeriveEndpoints appends the hook and log sub-paths to the base URL.
	// When false the base URL is the single hook endpoint.
	DeriveEndpoints bool

	ForwardTranscript bool
	MirrorStdin       bool
	ResolveTLS        bool
}

// Config is the fully resolved per-invocation configuration. A single
// token value is resolved once and used for every POST.
type Config struct {
	HookURL string
	LogURL  string
	Token   string

	// Disabled means monitoring is off for this invocation (permissive
	// variant with no URL configured). Not an error.
	Disabled bool
}

// Resolve reads the profile's environment variables through getenv and
// validates them. It runs before any stdin or network I/O; a non-nil error
// is a fatal configuration error.
func (p Profile) Resolve(getenv func(string) string) (Config, error) {
	base := getenv(p.URLVar)
	if base == "" {
		if !p.URLRequired {
			return Config{Disabled: true}, nil
		}
		return Config{}, fmt.Errorf("%s environment variable is required", p.URLVar)
	}

	token, err := p.resolveToken(getenv)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{HookURL: base, Token: token}
	if p.DeriveEndpoints {
		cfg.HookURL = base + hookPathSuffix
		cfg.LogURL = base + logPathSuffix
	}
	return cfg, nil
}

func (p Profile) resolveToken(getenv func(string) string) (string, error) {
	if p.HeadersVar != "" {
		headers := getenv(p.HeadersVar)
		if headers == "" {
			return "", fmt.Errorf("%s environment variable is required", p.HeadersVar)
		}
		token := bearerFromHeaders(headers)
		if token == "" {
			return "", fmt.Errorf("no Authorization=Bearer entry found in %s", p.HeadersVar)
		}
		return token, nil
	}

	token := getenv(p.TokenVar)
	if token == "" && p.TokenRequired {
		return "", fmt.Errorf("%s environment variable is required", p.TokenVar)
	}
	return token, nil
}

// bearerFromHeaders scans a comma-separated key=value list for the first
// Authorization entry carrying a Bearer token.
func bearerFromHeaders(headers string) string {
	for _, pair := range strings.Split(headers, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key != "Authorization" {
			continue
		}
		if token, ok := strings.CutPrefix(value, "Bearer "); ok {
			return token
		}
	}
	return ""
}
