package extract

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jroosing/mailreply/internal/helpers"
)

// Keys are the fields kept from a model answer, in response order.
var Keys = []string{"reply_type", "proposed_time", "meeting_link", "delegate_to", "additional_notes"}

// Fields is a normalized extraction result. Nil means "not present".
type Fields struct {
	ReplyType       *string `json:"reply_type"`
	ProposedTime    *string `json:"proposed_time"`
	MeetingLink     *string `json:"meeting_link"`
	DelegateTo      *string `json:"delegate_to"`
	AdditionalNotes *string `json:"additional_notes"`
}

// DecodeAnswer pulls the JSON object out of a model answer, tolerating a
// surrounding code fence or prose, and normalizes it.
func DecodeAnswer(answer string) (Fields, error) {
	body := stripCodeFence(answer)

	if start, end := strings.Index(body, "{"), strings.LastIndex(body, "}"); start >= 0 && end > start {
		body = body[start : end+1]
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return Fields{}, fmt.Errorf("answer is not a JSON object: %w", err)
	}
	return Normalize(raw), nil
}

// Normalize keeps only the known keys, maps blank values to nil and rewrites
// proposed_time as RFC 3339 (nil when it cannot be parsed).
func Normalize(raw map[string]any) Fields {
	var f Fields
	f.ReplyType = normalizeValue(raw["reply_type"])
	f.MeetingLink = normalizeValue(raw["meeting_link"])
	f.DelegateTo = normalizeValue(raw["delegate_to"])
	f.AdditionalNotes = normalizeValue(raw["additional_notes"])

	if v := normalizeValue(raw["proposed_time"]); v != nil {
		f.ProposedTime = normalizeTime(*v)
	}
	return f
}

func normalizeValue(v any) *string {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = strings.TrimSpace(t)
	case bool:
		if !t {
			return nil
		}
		s = "true"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return nil
		}
		s = string(b)
	}

	if strings.EqualFold(s, "null") || strings.EqualFold(s, "none") {
		return nil
	}
	return helpers.NilIfBlank(s)
}

func normalizeTime(s string) *string {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil
	}
	out := t.Format(time.RFC3339)
	return &out
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop an info string such as "json".
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	if end := strings.LastIndex(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}
