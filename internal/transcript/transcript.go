// Package transcript reads the JSONL conversation log referenced by a hook
// event's transcript_path. Transcripts are written incrementally by the
// agent, so a partially written or corrupted tail is expected and must not
// discard the valid prefix.
package transcript

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

// Transcript lines can carry whole tool responses, so the scanner needs far
// more than bufio's default 64KB line limit.
const maxLineSize = 1024 * 1024

// TruncatedError reports the first malformed line of a transcript. The
// records parsed before it are still returned to the caller.
type TruncatedError struct {
	Line    int
	Content string
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("malformed JSON on transcript line %d: %s", e.Line, e.Content)
}

// Parse reads the transcript at path and returns one record per valid JSON
// line, in file order. Blank lines are skipped. Parsing stops at the first
// malformed line and the prefix is returned alongside a *TruncatedError.
// A missing or unreadable file returns an empty slice and the open error;
// callers treat both conditions as non-fatal.
func Parse(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	records := make([]json.RawMessage, 0)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !json.Valid([]byte(line)) {
			return records, &TruncatedError{Line: lineNum, Content: line}
		}
		records = append(records, json.RawMessage(line))
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("read transcript: %w", err)
	}
	return records, nil
}
