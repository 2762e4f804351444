// Package main provides the strict hook monitor handler: both the monitor
// URL and the bearer token are required.
package main

import (
	"os"

	"github.com/analytiq-hub/sig-agent-marketplace/internal/relay"
)

func main() {
	os.Exit(relay.Run(relay.SigAgentSkills()))
}
