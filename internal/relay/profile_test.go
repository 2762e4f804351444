package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestSigAgentEndpointDerivation(t *testing.T) {
	cfg, err := SigAgent().Resolve(env(map[string]string{
		"SIGAGENT_URL":   "https://x.example/fastapi",
		"SIGAGENT_TOKEN": "tok",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://x.example/fastapi/v0/claude/hook", cfg.HookURL)
	assert.Equal(t, "https://x.example/fastapi/v0/claude/log", cfg.LogURL)
	assert.Equal(t, "tok", cfg.Token)
	assert.False(t, cfg.Disabled)
}

func TestMonitorVariantsUseURLAsIs(t *testing.T) {
	cfg, err := SigAgentSkills().Resolve(env(map[string]string{
		"CLAUDE_HOOK_MONITOR_URL":   "https://monitor.example/ingest",
		"CLAUDE_HOOK_MONITOR_TOKEN": "tok",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://monitor.example/ingest", cfg.HookURL)
	assert.Empty(t, cfg.LogURL)
}

func TestHookMonitorDegradesWithoutURL(t *testing.T) {
	cfg, err := HookMonitor().Resolve(env(nil))
	require.NoError(t, err)
	assert.True(t, cfg.Disabled)
}

func TestHookMonitorTokenOptional(t *testing.T) {
	cfg, err := HookMonitor().Resolve(env(map[string]string{
		"CLAUDE_HOOK_MONITOR_URL": "https://monitor.example",
	}))
	require.NoError(t, err)
	assert.Empty(t, cfg.Token)
	assert.False(t, cfg.Disabled)
}

func TestRequiredVariablesFatal(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		vars    map[string]string
		wantMsg string
	}{
		{
			name:    "skills missing URL",
			profile: SigAgentSkills(),
			vars:    map[string]string{"CLAUDE_HOOK_MONITOR_TOKEN": "tok"},
			wantMsg: "CLAUDE_HOOK_MONITOR_URL environment variable is required",
		},
		{
			name:    "skills missing token",
			profile: SigAgentSkills(),
			vars:    map[string]string{"CLAUDE_HOOK_MONITOR_URL": "https://m.example"},
			wantMsg: "CLAUDE_HOOK_MONITOR_TOKEN environment variable is required",
		},
		{
			name:    "sig-agent missing token",
			profile: SigAgent(),
			vars:    map[string]string{"SIGAGENT_URL": "https://m.example"},
			wantMsg: "SIGAGENT_TOKEN environment variable is required",
		},
		{
			name:    "otel missing endpoint",
			profile: OTELAgent(),
			vars:    map[string]string{"OTEL_EXPORTER_OTLP_HEADERS": "Authorization=Bearer x"},
			wantMsg: "OTEL_EXPORTER_OTLP_ENDPOINT environment variable is required",
		},
		{
			name:    "otel missing headers",
			profile: OTELAgent(),
			vars:    map[string]string{"OTEL_EXPORTER_OTLP_ENDPOINT": "https://m.example"},
			wantMsg: "OTEL_EXPORTER_OTLP_HEADERS environment variable is required",
		},
		{
			name:    "otel headers without bearer",
			profile: OTELAgent(),
			vars: map[string]string{
				"OTEL_EXPORTER_OTLP_ENDPOINT": "https://m.example",
				"OTEL_EXPORTER_OTLP_HEADERS":  "Content-Type=application/json",
			},
			wantMsg: "no Authorization=Bearer entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.profile.Resolve(env(tt.vars))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestOTELAgentResolve(t *testing.T) {
	cfg, err := OTELAgent().Resolve(env(map[string]string{
		"OTEL_EXPORTER_OTLP_ENDPOINT": "https://x.example/fastapi",
		"OTEL_EXPORTER_OTLP_HEADERS":  "Content-Type=application/json,Authorization=Bearer abc123",
	}))
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.Token)
	assert.Equal(t, "https://x.example/fastapi/v0/claude/hook", cfg.HookURL)
	assert.Equal(t, "https://x.example/fastapi/v0/claude/log", cfg.LogURL)
}

func TestBearerFromHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers string
		want    string
	}{
		{
			name:    "bearer after other headers",
			headers: "Content-Type=application/json,Authorization=Bearer abc123",
			want:    "abc123",
		},
		{
			name:    "bearer only",
			headers: "Authorization=Bearer tok",
			want:    "tok",
		},
		{
			name:    "first match wins",
			headers: "Authorization=Bearer first,Authorization=Bearer second",
			want:    "first",
		},
		{
			name:    "surrounding whitespace",
			headers: " Authorization=Bearer spaced ,X=y",
			want:    "spaced",
		},
		{
			name:    "non-bearer authorization skipped",
			headers: "Authorization=Basic dXNlcg==,Authorization=Bearer real",
			want:    "real",
		},
		{
			name:    "no authorization entry",
			headers: "Content-Type=application/json,X-Custom=1",
			want:    "",
		},
		{
			name:    "empty string",
			headers: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bearerFromHeaders(tt.headers))
		})
	}
}
