package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/okian/gradestats/internal/adapters/codec"
	service "github.com/okian/gradestats/internal/app"
	"github.com/okian/gradestats/internal/domain/model"
	"github.com/okian/gradestats/internal/domain/stats"
)

// parseScore parses a whole token as a number. Unlike file loading, trailing
// text is an error here.
func parseScore(s string) (float64, error) {
	return codec.ParseScore(s)
}

func writeEntries(w io.Writer, svc *service.Service) {
	entries := svc.Entries()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "No scores recorded.")
		return
	}
	_, _ = fmt.Fprintf(w, "Scores (total %d):\n", len(entries))
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%3d: %.2f\n", e.Position, e.Score)
	}
}

func writeSummary(w io.Writer, sum stats.Summary) {
	if sum.Empty() {
		_, _ = fmt.Fprintln(w, "No scores recorded.")
		return
	}
	_, _ = fmt.Fprintf(w, "Mean: %.2f\n", sum.Mean)
	_, _ = fmt.Fprintf(w, "Highest score: %.2f\n", sum.Max)
	_, _ = fmt.Fprintf(w, "Lowest score: %.2f\n", sum.Min)
	_, _ = fmt.Fprintf(w, "Standard deviation: %.2f\n", sum.StdDev)
}

// describe turns session errors into user-facing text, keeping validation
// and file failures apart.
func describe(err error) string {
	switch {
	case errors.Is(err, model.ErrOutOfRange):
		return "invalid score: " + err.Error()
	case errors.Is(err, codec.ErrIO):
		return "file error: " + err.Error()
	case errors.Is(err, service.ErrEmpty):
		return "no scores recorded"
	default:
		return err.Error()
	}
}
