// Package hookevt models the hook event each handler receives on stdin.
// The event is treated as an opaque JSON object: handlers never depend on
// its schema beyond the optional transcript_path field.
package hookevt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// Event is a parsed hook event. Keys and values are whatever the agent sent.
type Event map[string]any

// Parse unmarshals raw stdin text into an Event. The input must be a JSON
// object; anything else (arrays, scalars, garbage) is an error.
func Parse(raw []byte) (Event, error) {
	var evt Event
	if err := json.Unmarshal(raw, &evt); err != nil {
		return nil, fmt.Errorf("hook input is not a JSON object: %w", err)
	}
	if evt == nil {
		// A JSON null unmarshals into a nil map without error.
		return nil, errors.New("hook input is not a JSON object")
	}
	return evt, nil
}

// TranscriptPath returns the transcript_path field, or "" when the event
// does not carry one (or carries a non-string value).
func (e Event) TranscriptPath() string {
	path, _ := e["transcript_path"].(string)
	return path
}

// MirrorPath is where the hook-monitor variant keeps its local copy of raw
// hook input, one line per invocation.
func MirrorPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "tmp", "tool_input.jsonl"), nil
}

// Mirror appends raw, newline-terminated, to MirrorPath, creating the
// directory on first use.
func Mirror(raw []byte) error {
	path, err := MirrorPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create mirror directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open mirror file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("append hook input: %w", err)
	}
	return nil
}
