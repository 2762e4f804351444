// Package relay implements the hook event relay shared by every handler
// binary. Each invocation is one linear pass: resolve configuration from
// the environment, read the hook event from stdin, optionally parse the
// referenced transcript, then POST the payloads to the monitoring service.
// Delivery failures are reported and dropped; only configuration and
// required-input errors make the process exit non-zero.
package relay

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/analytiq-hub/sig-agent-marketplace/internal/debuglog"
	"github.com/analytiq-hub/sig-agent-marketplace/internal/delivery"
	"github.com/analytiq-hub/sig-agent-marketplace/internal/hookevt"
	"github.com/analytiq-hub/sig-agent-marketplace/internal/tlstrust"
	"github.com/analytiq-hub/sig-agent-marketplace/internal/transcript"
)

// Relay holds one invocation's dependencies. Run wires the process
// defaults; tests substitute their own.
type Relay struct {
	Profile Profile
	Stdin   io.Reader
	Stderr  io.Writer
	Getenv  func(string) string
	Log     zerolog.Logger
}

// Run executes the relay for the given profile against the real process
// environment and returns the exit code for main.
func Run(p Profile) int {
	r := &Relay{
		Profile: p,
		Stdin:   os.Stdin,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
	}
	r.Log = debuglog.New(r.Getenv(DebugVar) != "")
	return r.run()
}

func (r *Relay) run() int {
	cfg, err := r.Profile.Resolve(r.Getenv)
	if err != nil {
		fmt.Fprintf(r.Stderr, "Error: %v\n", err)
		r.Log.Error().Err(err).Str("variant", r.Profile.Name).Msg("configuration error")
		return 1
	}

	raw, err := io.ReadAll(r.Stdin)
	if err != nil {
		fmt.Fprintf(r.Stderr, "Error: read hook input: %v\n", err)
		return 1
	}
	r.Log.Debug().Str("variant", r.Profile.Name).Int("bytes", len(raw)).Msg("hook input read")

	if r.Profile.MirrorStdin {
		if err := hookevt.Mirror(raw); err != nil {
			fmt.Fprintf(r.Stderr, "Hook input mirror failed: %v\n", err)
			r.Log.Warn().Err(err).Msg("mirror failed")
		}
	}

	if cfg.Disabled {
		fmt.Fprintln(r.Stderr, "No hook monitor URL set")
		return 0
	}

	var evt hookevt.Event
	var records []json.RawMessage
	if r.Profile.ForwardTranscript {
		evt, err = hookevt.Parse(raw)
		if err != nil {
			fmt.Fprintf(r.Stderr, "Error: %v\n", err)
			r.Log.Error().Err(err).Msg("hook input parse error")
			return 1
		}
		records = r.readTranscript(evt)
	}

	var tlsCfg *tls.Config
	if r.Profile.ResolveTLS {
		tlsCfg, _ = tlstrust.Resolve(r.Log)
	}

	client := delivery.NewClient(cfg.Token, r.Profile.UserAgent, tlsCfg, r.Log)

	r.report("Hook monitor", client.Post(cfg.HookURL, delivery.NewHookPayload(string(raw))))

	if r.Profile.ForwardTranscript {
		r.report("Log", client.Post(cfg.LogURL, delivery.NewLogPayload(evt, records)))
	}

	return 0
}

// readTranscript parses the transcript named by the event, if any. Every
// failure here is non-fatal: whatever prefix parsed is forwarded.
func (r *Relay) readTranscript(evt hookevt.Event) []json.RawMessage {
	path := evt.TranscriptPath()
	if path == "" {
		return nil
	}

	records, err := transcript.Parse(path)
	if err != nil {
		fmt.Fprintf(r.Stderr, "Transcript: %v\n", err)
		r.Log.Warn().Err(err).Str("path", path).Int("records", len(records)).Msg("transcript incomplete")
	} else {
		r.Log.Debug().Str("path", path).Int("records", len(records)).Msg("transcript parsed")
	}
	return records
}

// report writes one diagnostic per failed POST, with the HTTP status and
// body when the server answered and the transport reason when it did not.
func (r *Relay) report(label string, err error) {
	if err == nil {
		return
	}

	var statusErr *delivery.StatusError
	if errors.As(err, &statusErr) {
		fmt.Fprintf(r.Stderr, "%s HTTP error %d: %s\n", label, statusErr.StatusCode, statusErr.Body)
	} else {
		fmt.Fprintf(r.Stderr, "%s request failed: %v\n", label, err)
	}
	r.Log.Error().Err(err).Str("target", label).Msg("upload failed")
}
