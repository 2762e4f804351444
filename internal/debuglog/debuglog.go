// Package debuglog provides the opt-in file logger shared by all hook
// handler binaries. The logger is constructed once at process start; when
// debugging is disabled every call is a no-op and the filesystem is never
// touched.
package debuglog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// fileName is the debug log file created under the platform temp directory.
const fileName = "sig_agent_hook_debug.log"

// Path returns the debug log location. os.TempDir is deterministic per
// platform (%TMP% on Windows, /tmp otherwise), so all invocations on a host
// append to the same file.
func Path() string {
	return filepath.Join(os.TempDir(), fileName)
}

// New returns the process logger. Disabled loggers discard everything.
// Enabled loggers append one line per call to Path(), tagged with a fresh
// invocation id so interleaved hook invocations can be told apart. If the
// file cannot be opened, or a later write to it fails, the line goes to
// stderr instead of being lost.
func New(enabled bool) zerolog.Logger {
	if !enabled {
		return zerolog.Nop()
	}
	return newAt(Path())
}

func newAt(path string) zerolog.Logger {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return logger(os.Stderr)
	}
	return logger(&fallbackWriter{f: f})
}

func logger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().
		Timestamp().
		Str("invocation", uuid.NewString()).
		Logger()
}

// fallbackWriter appends to the debug log file and redirects a failed write
// to stderr, since zerolog discards writer errors.
type fallbackWriter struct {
	f *os.File
}

func (w *fallbackWriter) Write(p []byte) (int, error) {
	n, err := w.f.Write(p)
	if err != nil {
		return os.Stderr.Write(p)
	}
	return n, nil
}
