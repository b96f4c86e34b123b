// Package report renders pipeline results. Pure formatting: nothing in
// here makes decisions about what qualifies or what is new.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"job-monitor/internal/domain"
	"job-monitor/internal/rank"
)

const consoleTop = 20

func statusLabel(isNew bool) string {
	if isNew {
		return "NEW"
	}
	return "All Matching"
}

// reasonSummary shows at most the first three matched reasons.
func reasonSummary(reasons []string) string {
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return strings.Join(reasons, ", ")
}

// Console writes the run summary: banner, totals, top postings by score.
func Console(w io.Writer, postings []domain.ScoredPosting, isNew bool, now time.Time) {
	bar := strings.Repeat("=", 70)
	fmt.Fprintf(w, "\n%s\n", bar)
	fmt.Fprintf(w, "  JOB MONITOR RESULTS - %s\n", statusLabel(isNew))
	fmt.Fprintf(w, "  Generated: %s\n", now.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "  Total Jobs: %d\n", len(postings))
	fmt.Fprintf(w, "%s\n", bar)

	if len(postings) == 0 {
		fmt.Fprintf(w, "\n  No new matching jobs found today.\n")
		fmt.Fprintf(w, "  Keep checking - the right role will appear!\n\n")
		return
	}

	for _, p := range rank.TopN(postings, consoleTop) {
		fmt.Fprintf(w, "\n  * %s\n", p.Title)
		fmt.Fprintf(w, "    Company:  %s\n", p.Company)
		fmt.Fprintf(w, "    Location: %s\n", p.Location)
		fmt.Fprintf(w, "    Score:    %d (%s)\n", p.Score, reasonSummary(p.Reasons))
		fmt.Fprintf(w, "    URL:      %s\n", p.URL)
	}

	fmt.Fprintf(w, "\n%s\n\n", bar)
}
