package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"job-monitor/internal/domain"
	"job-monitor/internal/rank"
)

const emailTop = 15

var emailTmpl = template.Must(template.New("email").Parse(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #2563eb;">Job Monitor - {{.Total}} New Jobs Found</h2>
<p style="color: #666;">Generated: {{.Generated}}</p>
<hr>
{{range .Jobs}}<div style="margin: 15px 0; padding: 10px; border-left: 3px solid #2563eb;">
  <h3 style="margin: 0;"><a href="{{.URL}}" style="color: #2563eb;">{{.Title}}</a></h3>
  <p style="margin: 5px 0; color: #333;"><strong>{{.Company}}</strong> - {{.Location}}</p>
  <p style="margin: 5px 0; color: #666; font-size: 12px;">Score: {{.Score}} | Keywords: {{.Reasons}}</p>
</div>
{{end}}<hr>
<p style="color: #666; font-size: 12px;">This email was generated by your Job Monitor.</p>
</body>
</html>
`))

var emailEmptyTmpl = template.Must(template.New("emailEmpty").Parse(`<html>
<body style="font-family: Arial, sans-serif;">
<h2>Job Monitor - No New Jobs Today</h2>
<p>No new matching jobs found. Keep checking!</p>
</body>
</html>
`))

type emailJob struct {
	Title    string
	Company  string
	Location string
	URL      string
	Score    int
	Reasons  string
}

// EmailHTML renders the notification body: top postings by score, or a
// no-new-jobs note when the run came up empty.
func EmailHTML(postings []domain.ScoredPosting, now time.Time) string {
	var b strings.Builder
	if len(postings) == 0 {
		_ = emailEmptyTmpl.Execute(&b, nil)
		return b.String()
	}

	jobs := make([]emailJob, 0, emailTop)
	for _, p := range rank.TopN(postings, emailTop) {
		jobs = append(jobs, emailJob{
			Title:    p.Title,
			Company:  p.Company,
			Location: p.Location,
			URL:      p.URL,
			Score:    p.Score,
			Reasons:  reasonSummary(p.Reasons),
		})
	}

	_ = emailTmpl.Execute(&b, map[string]any{
		"Total":     len(postings),
		"Generated": now.Format("2006-01-02 15:04"),
		"Jobs":      jobs,
	})
	return b.String()
}

// EmailSubject builds the notification subject line.
func EmailSubject(newCount int, now time.Time) string {
	if newCount == 0 {
		return "Job Monitor: No New Jobs Today"
	}
	return fmt.Sprintf("Job Monitor: %d New Jobs Found - %s", newCount, now.Format("2006-01-02"))
}
