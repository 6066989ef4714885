package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dkravtsov/authwatch/internal/healthwatch/probe"
)

func formatLine(r probe.Result) string {
	line := fmt.Sprintf("%s  %-7s  %-11s  %8s",
		r.Timestamp.Format(time.RFC3339),
		r.Operation,
		r.Outcome,
		r.Latency.Round(time.Microsecond),
	)
	if r.Reason != "" {
		line += "  " + r.Reason
	}
	return line
}

// renderLive writes one result to the live output. Callers must hold r.mu.
func (r *Reporter) renderLive(result probe.Result) {
	if r.tty {
		// Single status line, repainted in place.
		fmt.Fprintf(r.live, "\x1b[2K\r%s", formatLine(result))
		return
	}
	fmt.Fprintln(r.live, formatLine(result))
}

// Render writes the buffered results as a table followed by a summary line.
func (r *Reporter) Render(w io.Writer) error {

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "TIMESTAMP\tOPERATION\tOUTCOME\tLATENCY\tREASON")
	for _, result := range r.Snapshot() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			result.Timestamp.Format(time.RFC3339),
			result.Operation,
			result.Outcome,
			result.Latency.Round(time.Microsecond),
			result.Reason,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, r.Summarize(time.Time{}))
	return err
}
