package client

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jroosing/mailreply/internal/helpers"
)

// DisplayTimeLayout is how history timestamps are shown.
const DisplayTimeLayout = "Jan 2, 2006 3:04 PM"

const unknownReplyType = "Unknown"

const historyHTML = `{{range .Entries}}<div class="history-item">
  <div class="history-head"><span class="type">{{typeLabel .ReplyType}}</span> <span class="date">{{formatTime .CreatedAt $.Loc}}</span></div>
{{- with deref .ProposedTime}}
  <p>Proposed time: {{formatTime . $.Loc}}</p>{{end}}
{{- with deref .DelegateTo}}
  <p>Delegate to: {{.}}</p>{{end}}
{{- with deref .AdditionalNotes}}
  <p>Notes: {{.}}</p>{{end}}
</div>
{{end}}`

var historyTemplate = template.Must(template.New("history").Funcs(template.FuncMap{
	"formatTime": formatTime,
	"typeLabel":  typeLabel,
	"deref":      helpers.Deref,
}).Parse(historyHTML))

type historyData struct {
	Entries []HistoryEntry
	Loc     *time.Location
}

// RenderHistoryHTML writes one escaped <div class="history-item"> per entry.
// A nil loc means local time.
func RenderHistoryHTML(w io.Writer, entries []HistoryEntry, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	if err := historyTemplate.Execute(w, historyData{Entries: entries, Loc: loc}); err != nil {
		return fmt.Errorf("failed to render history: %w", err)
	}
	return nil
}

// RenderHistoryText writes entries as plain text for terminals.
func RenderHistoryText(w io.Writer, entries []HistoryEntry, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	if len(entries) == 0 {
		_, err := io.WriteString(w, "No history yet.\n")
		return err
	}

	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%s] %s\n", typeLabel(e.ReplyType), formatTime(e.CreatedAt, loc))
		if p := helpers.Deref(e.ProposedTime); p != "" {
			fmt.Fprintf(&sb, "  Proposed time: %s\n", formatTime(p, loc))
		}
		if d := helpers.Deref(e.DelegateTo); d != "" {
			fmt.Fprintf(&sb, "  Delegate to: %s\n", d)
		}
		if n := helpers.Deref(e.AdditionalNotes); n != "" {
			fmt.Fprintf(&sb, "  Notes: %s\n", n)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func typeLabel(replyType *string) string {
	if s := helpers.Deref(replyType); s != "" {
		return s
	}
	return unknownReplyType
}

// formatTime shows raw in loc, or raw unchanged when it is not a timestamp.
func formatTime(raw string, loc *time.Location) string {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		t, err = dateparse.ParseIn(raw, loc)
		if err != nil {
			return raw
		}
	}
	return t.In(loc).Format(DisplayTimeLayout)
}
