package extract_test

import (
	"testing"

	"github.com/jroosing/mailreply/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DropsUnknownAndBlank(t *testing.T) {
	f := extract.Normalize(map[string]any{
		"reply_type":       "acceptance",
		"meeting_link":     "",
		"delegate_to":      "   ",
		"additional_notes": nil,
		"sentiment":        "positive",
	})

	require.NotNil(t, f.ReplyType)
	assert.Equal(t, "acceptance", *f.ReplyType)
	assert.Nil(t, f.MeetingLink)
	assert.Nil(t, f.DelegateTo)
	assert.Nil(t, f.AdditionalNotes)
	assert.Nil(t, f.ProposedTime)
}

func TestNormalize_NullLikeStrings(t *testing.T) {
	f := extract.Normalize(map[string]any{"delegate_to": "null", "meeting_link": "None"})
	assert.Nil(t, f.DelegateTo)
	assert.Nil(t, f.MeetingLink)
}

func TestNormalize_NonStringValues(t *testing.T) {
	f := extract.Normalize(map[string]any{
		"additional_notes": []any{"bring slides", "room 4"},
		"reply_type":       false,
		"meeting_link":     float64(42),
	})

	require.NotNil(t, f.AdditionalNotes)
	assert.Equal(t, `["bring slides","room 4"]`, *f.AdditionalNotes)
	assert.Nil(t, f.ReplyType)
	require.NotNil(t, f.MeetingLink)
	assert.Equal(t, "42", *f.MeetingLink)
}

func TestNormalize_ProposedTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{name: "rfc3339 utc", in: "2024-03-08T15:00:00Z", want: ptr("2024-03-08T15:00:00Z")},
		{name: "rfc3339 offset", in: "2024-03-08T15:00:00+02:00", want: ptr("2024-03-08T15:00:00+02:00")},
		{name: "space separated", in: "2024-03-08 15:00:00", want: ptr("2024-03-08T15:00:00Z")},
		{name: "prose", in: "sometime next week", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := extract.Normalize(map[string]any{"proposed_time": tt.in})
			assert.Equal(t, tt.want, f.ProposedTime)
		})
	}
}

func TestDecodeAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{name: "bare", answer: `{"reply_type":"decline"}`},
		{name: "fenced", answer: "```json\n{\"reply_type\":\"decline\"}\n```"},
		{name: "with prose", answer: "Sure! Here is the result:\n{\"reply_type\":\"decline\"}\nHope it helps."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := extract.DecodeAnswer(tt.answer)
			require.NoError(t, err)
			require.NotNil(t, f.ReplyType)
			assert.Equal(t, "decline", *f.ReplyType)
		})
	}
}

func TestDecodeAnswer_NotJSON(t *testing.T) {
	_, err := extract.DecodeAnswer("I could not determine anything.")
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	p := extract.BuildPrompt("See you Monday")
	for _, key := range extract.Keys {
		assert.Contains(t, p, key)
	}
	assert.Contains(t, p, "See you Monday")
}

func ptr(s string) *string { return &s }
