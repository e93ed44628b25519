package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/jroosing/mailreply/internal/client"
)

// writerView renders controller output as plain text: results and history to
// out, errors to errOut.
type writerView struct {
	out    io.Writer
	errOut io.Writer
	loc    *time.Location
}

var _ client.View = (*writerView)(nil)

func (v *writerView) SetSubmitEnabled(bool) {}
func (v *writerView) SetBusy(bool)          {}
func (v *writerView) ClearResult()          {}

func (v *writerView) ShowResult(pretty string) {
	fmt.Fprintln(v.out, pretty)
}

func (v *writerView) ShowError(message string) {
	fmt.Fprintln(v.errOut, message)
}

func (v *writerView) ShowHistory(entries []client.HistoryEntry) {
	fmt.Fprintln(v.out)
	if err := client.RenderHistoryText(v.out, entries, v.loc); err != nil {
		fmt.Fprintln(v.errOut, err)
	}
}

func (v *writerView) ShowHistoryFailure(message string) {
	fmt.Fprintln(v.errOut, message)
}
