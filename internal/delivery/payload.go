package delivery

import (
	"time"

	json "github.com/goccy/go-json"

	"github.com/analytiq-hub/sig-agent-marketplace/internal/hookevt"
)

// HookPayload carries the raw hook input to the monitoring service.
type HookPayload struct {
	HookStdin     string `json:"hook_stdin"`
	HookTimestamp string `json:"hook_timestamp"`
}

// LogPayload carries the parsed hook event plus the transcript records
// accumulated for this invocation.
type LogPayload struct {
	HookData          hookevt.Event     `json:"hook_data"`
	TranscriptRecords []json.RawMessage `json:"transcript_records"`
	UploadTimestamp   string            `json:"upload_timestamp"`
}

// NewHookPayload stamps the raw stdin text with the current UTC time.
func NewHookPayload(raw string) HookPayload {
	return HookPayload{
		HookStdin:     raw,
		HookTimestamp: timestamp(),
	}
}

// NewLogPayload stamps the parsed event and transcript records with the
// current UTC time. A nil record slice is normalized so the wire field is
// always a JSON array.
func NewLogPayload(evt hookevt.Event, records []json.RawMessage) LogPayload {
	if records == nil {
		records = make([]json.RawMessage, 0)
	}
	return LogPayload{
		HookData:          evt,
		TranscriptRecords: records,
		UploadTimestamp:   timestamp(),
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
