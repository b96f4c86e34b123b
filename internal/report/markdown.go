package report

import (
	"fmt"
	"strings"
	"time"

	"job-monitor/internal/domain"
	"job-monitor/internal/rank"
)

const quickApplyTop = 10

// Markdown renders the file report: totals, per-company sections with
// the biggest companies first, and a quick-apply list of the top links.
func Markdown(postings []domain.ScoredPosting, isNew bool, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Job Monitor Results - %s\n", statusLabel(isNew))
	fmt.Fprintf(&b, "**Generated:** %s\n", now.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**Total Jobs:** %d\n\n", len(postings))

	if len(postings) == 0 {
		b.WriteString("No new matching jobs found today.\n\n")
		b.WriteString("Keep checking - the right role will appear!\n")
		return b.String()
	}

	for _, g := range rank.GroupByCompany(postings) {
		fmt.Fprintf(&b, "## %s (%d jobs)\n\n", g.Company, len(g.Postings))
		for _, p := range g.Postings {
			fmt.Fprintf(&b, "### [%s](%s)\n", p.Title, p.URL)
			fmt.Fprintf(&b, "- **Location:** %s\n", p.Location)
			fmt.Fprintf(&b, "- **Relevance:** %d (%s)\n", p.Score, reasonSummary(p.Reasons))
			if p.Salary != "" {
				fmt.Fprintf(&b, "- **Salary:** %s\n", p.Salary)
			}
			if p.PostedDate != "" {
				fmt.Fprintf(&b, "- **Posted:** %s\n", p.PostedDate)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("---\n")
	b.WriteString("## Quick Apply Links\n\n")
	for _, p := range rank.TopN(postings, quickApplyTop) {
		fmt.Fprintf(&b, "- [%s: %s](%s)\n", p.Company, p.Title, p.URL)
	}

	return b.String()
}
