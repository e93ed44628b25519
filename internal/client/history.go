package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// HistoryEntry is one stored parse result from /api/history. Text fields are
// untrusted user or model output.
type HistoryEntry struct {
	ID              int64   `json:"id"`
	InputText       string  `json:"input_text"`
	ReplyType       *string `json:"reply_type"`
	ProposedTime    *string `json:"proposed_time"`
	MeetingLink     *string `json:"meeting_link"`
	DelegateTo      *string `json:"delegate_to"`
	AdditionalNotes *string `json:"additional_notes"`
	CreatedAt       string  `json:"created_at"`
}

// UnmarshalJSON accepts any JSON value for every field. Non-string values are
// shown the way a browser would print them; an id that is not an integer
// decodes as 0. Entries that are not objects decode as empty entries.
func (e *HistoryEntry) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			*e = HistoryEntry{}
			return nil
		}
		return fmt.Errorf("failed to decode history entry: %w", err)
	}

	*e = HistoryEntry{
		ID:              looseID(fields["id"]),
		InputText:       looseText(fields["input_text"]),
		ReplyType:       looseString(fields["reply_type"]),
		ProposedTime:    looseString(fields["proposed_time"]),
		MeetingLink:     looseString(fields["meeting_link"]),
		DelegateTo:      looseString(fields["delegate_to"]),
		AdditionalNotes: looseString(fields["additional_notes"]),
		CreatedAt:       looseText(fields["created_at"]),
	}
	return nil
}

func looseString(v any) *string {
	if v == nil {
		return nil
	}
	s := stringify(v)
	return &s
}

func looseText(v any) string {
	if v == nil {
		return ""
	}
	return stringify(v)
}

func looseID(v any) int64 {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return int64(f)
		}
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
