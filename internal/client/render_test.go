package client_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jroosing/mailreply/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// ============================================================================
// HTML Rendering Tests
// ============================================================================

func TestRenderHistoryHTML_EscapesUserText(t *testing.T) {
	entries := []client.HistoryEntry{{
		ID:              1,
		ReplyType:       strPtr(`<img src=x onerror="alert(1)">`),
		DelegateTo:      strPtr(`bob & "alice" <a@example.com>`),
		AdditionalNotes: strPtr(`it's <script>alert('x')</script>`),
		CreatedAt:       "2024-03-08T14:05:00Z",
	}}

	var buf bytes.Buffer
	require.NoError(t, client.RenderHistoryHTML(&buf, entries, time.UTC))
	out := buf.String()

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, `"alice"`)
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&amp;")
	assert.Contains(t, out, "&#34;alice&#34;")
	assert.Contains(t, out, "it&#39;s")
	assert.Contains(t, out, `<div class="history-item">`)
}

func TestRenderHistoryHTML_FieldsAndFallbacks(t *testing.T) {
	entries := []client.HistoryEntry{
		{
			ID:           2,
			ReplyType:    strPtr("reschedule"),
			ProposedTime: strPtr("2024-03-12T15:30:00Z"),
			CreatedAt:    "2024-03-08T14:05:00Z",
		},
		{
			ID:        1,
			CreatedAt: "yesterday-ish",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, client.RenderHistoryHTML(&buf, entries, time.UTC))
	out := buf.String()

	assert.Equal(t, 2, strings.Count(out, `class="history-item"`))
	assert.Contains(t, out, "reschedule")
	assert.Contains(t, out, "Mar 8, 2024 2:05 PM")
	assert.Contains(t, out, "Proposed time: Mar 12, 2024 3:30 PM")
	assert.Contains(t, out, "Unknown")
	assert.Contains(t, out, "yesterday-ish")
	assert.NotContains(t, out, "Delegate to:")
	assert.NotContains(t, out, "Notes:")

	// Server order is kept.
	assert.Less(t, strings.Index(out, "reschedule"), strings.Index(out, "Unknown"))
}

func TestRenderHistoryHTML_Location(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	entries := []client.HistoryEntry{{CreatedAt: "2024-03-08T23:30:00Z"}}

	var buf bytes.Buffer
	require.NoError(t, client.RenderHistoryHTML(&buf, entries, loc))

	assert.Contains(t, buf.String(), "Mar 9, 2024 1:30 AM")
}

func TestRenderHistoryHTML_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, client.RenderHistoryHTML(&buf, nil, nil))
	assert.Empty(t, strings.TrimSpace(buf.String()))
}

// ============================================================================
// Text Rendering Tests
// ============================================================================

func TestRenderHistoryText(t *testing.T) {
	entries := []client.HistoryEntry{
		{
			ReplyType:       strPtr("delegation"),
			DelegateTo:      strPtr("ops@example.com"),
			AdditionalNotes: strPtr("<b>urgent</b>"),
			CreatedAt:       "2024-03-08T09:00:00Z",
		},
		{CreatedAt: "2024-03-07T09:00:00Z"},
	}

	var buf bytes.Buffer
	require.NoError(t, client.RenderHistoryText(&buf, entries, time.UTC))

	assert.Equal(t,
		"[delegation] Mar 8, 2024 9:00 AM\n"+
			"  Delegate to: ops@example.com\n"+
			"  Notes: <b>urgent</b>\n"+
			"\n"+
			"[Unknown] Mar 7, 2024 9:00 AM\n",
		buf.String())
}

func TestRenderHistoryText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, client.RenderHistoryText(&buf, []client.HistoryEntry{}, time.UTC))
	assert.Equal(t, "No history yet.\n", buf.String())
}
