// Package main provides the OTLP-convention hook handler. Endpoint and
// credentials come from OTEL_EXPORTER_OTLP_ENDPOINT and
// OTEL_EXPORTER_OTLP_HEADERS, and TLS trust is resolved explicitly so the
// handler behaves the same across platforms.
package main

import (
	"os"

	"github.com/analytiq-hub/sig-agent-marketplace/internal/relay"
)

func main() {
	os.Exit(relay.Run(relay.OTELAgent()))
}
