// Package main provides the sig-agent hook handler. It forwards the hook
// event and the parsed transcript to the service's hook and log endpoints.
package main

import (
	"os"

	"github.com/analytiq-hub/sig-agent-marketplace/internal/relay"
)

func main() {
	os.Exit(relay.Run(relay.SigAgent()))
}
