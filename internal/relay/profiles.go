package relay

// HookMonitor is the permissive monitor variant. It always mirrors raw
// hook input locally; with no monitor URL configured it degrades to
// "monitoring disabled" instead of failing.
func HookMonitor() Profile {
	return Profile{
		Name:        "hook-monitor",
		UserAgent:   "Claude-Hook-Monitor/1.0",
		URLVar:      "CLAUDE_HOOK_MONITOR_URL",
		TokenVar:    "CLAUDE_HOOK_MONITOR_TOKEN",
		MirrorStdin: true,
	}
}

// SigAgentSkills is the strict monitor variant: same variables as
// HookMonitor but both are required and nothing is mirrored locally.
func SigAgentSkills() Profile {
	return Profile{
		Name:          "sig-agent-skills",
		UserAgent:     "sig-agent-skills/1.0",
		URLVar:        "CLAUDE_HOOK_MONITOR_URL",
		TokenVar:      "CLAUDE_HOOK_MONITOR_TOKEN",
		URLRequired:   true,
		TokenRequired: true,
	}
}

// SigAgent forwards both the raw hook input and the parsed transcript to
// the sig-agent service's hook and log endpoints.
func SigAgent() Profile {
	return Profile{
		Name:              "sig-agent",
		UserAgent:         "sig-agent/1.0",
		URLVar:            "SIGAGENT_URL",
		TokenVar:          "SIGAGENT_TOKEN",
		URLRequired:       true,
		TokenRequired:     true,
		DeriveEndpoints:   true,
		ForwardTranscript: true,
	}
}

// OTELAgent is the OTLP-convention variant: endpoint and credentials come
// from the standard OTLP exporter variables, with the bearer token
// extracted from the headers list. It is the only variant that resolves
// its own TLS trust configuration.
func OTELAgent() Profile {
	return Profile{
		Name:              "otel-agent",
		UserAgent:         "sig-agent-otel/1.0",
		URLVar:            "OTEL_EXPORTER_OTLP_ENDPOINT",
		HeadersVar:        "OTEL_EXPORTER_OTLP_HEADERS",
		URLRequired:       true,
		TokenRequired:     true,
		DeriveEndpoints:   true,
		ForwardTranscript: true,
		ResolveTLS:        true,
	}
}
