// Package main provides the permissive hook monitor handler. It mirrors
// raw hook input to ~/tmp/tool_input.jsonl and forwards it to
// CLAUDE_HOOK_MONITOR_URL when that is set.
package main

import (
	"os"

	"github.com/analytiq-hub/sig-agent-marketplace/internal/relay"
)

func main() {
	os.Exit(relay.Run(relay.HookMonitor()))
}
