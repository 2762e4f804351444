package debuglog

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStderr swaps os.Stderr for a pipe, runs fn, and returns whatever
// fn wrote to stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestDisabledNeverTouchesFilesystem(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	log := New(false)
	log.Info().Msg("this must go nowhere")
	log.Error().Msg("and so must this")

	_, err := os.Stat(Path())
	assert.True(t, os.IsNotExist(err), "debug log file must not exist when disabled")
}

func TestEnabledAppendsLines(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	log := New(true)
	log.Info().Msg("first")
	log.Info().Msg("second")

	data, err := os.ReadFile(Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
	assert.Contains(t, string(data), "invocation")
}

func TestEnabledAcrossInvocationsAppends(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	first := New(true)
	first.Info().Msg("from run one")
	second := New(true)
	second.Info().Msg("from run two")

	data, err := os.ReadFile(Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "from run one")
	assert.Contains(t, string(data), "from run two")
}

func TestUnopenableFileFallsBackToStderr(t *testing.T) {
	// A path inside a directory that does not exist cannot be opened.
	path := filepath.Join(t.TempDir(), "missing", "debug.log")

	stderr := captureStderr(t, func() {
		log := newAt(path)
		log.Info().Msg("fallback line")
	})

	assert.Contains(t, stderr, "fallback line")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFailedWriteFallsBackToStderr(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "debug.log"))
	require.NoError(t, err)
	require.NoError(t, f.Close()) // writes to a closed file fail

	w := &fallbackWriter{f: f}
	stderr := captureStderr(t, func() {
		n, werr := w.Write([]byte("rescued line\n"))
		assert.NoError(t, werr)
		assert.Equal(t, len("rescued line\n"), n)
	})

	assert.Contains(t, stderr, "rescued line")
}
