package greenhouse

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"job-monitor/internal/domain"
	"job-monitor/internal/fetch"
	"job-monitor/internal/scrape/util"
)

const DefaultBaseURL = "https://boards-api.greenhouse.io"

// Source reads one Greenhouse board via the public boards API.
type Source struct {
	company string
	token   string
	client  *fetch.Client

	BaseURL string // overridable for tests
}

func New(company, boardToken string, client *fetch.Client) *Source {
	return &Source{
		company: company,
		token:   boardToken,
		client:  client,
		BaseURL: DefaultBaseURL,
	}
}

func (s *Source) Name() string { return "greenhouse" }

type boardResponse struct {
	Jobs []boardJob `json:"jobs"`
}

type boardJob struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	AbsoluteURL string `json:"absolute_url"`
	UpdatedAt   string `json:"updated_at"`
	Location    struct {
		Name string `json:"name"`
	} `json:"location"`
}

func (s *Source) Fetch(ctx context.Context) ([]domain.Posting, error) {
	url := fmt.Sprintf("%s/v1/boards/%s/jobs", s.BaseURL, s.token)

	var data boardResponse
	if err := s.client.GetJSON(ctx, url, &data); err != nil {
		return nil, fmt.Errorf("greenhouse board %s: %w", s.token, err)
	}

	out := make([]domain.Posting, 0, len(data.Jobs))
	skipped := 0
	for _, j := range data.Jobs {
		title := util.CleanText(j.Title)
		if title == "" || j.AbsoluteURL == "" || j.ID == 0 {
			skipped++
			continue
		}
		loc := util.NormalizeLocation(j.Location.Name)
		if loc == "" {
			loc = "Unknown"
		}
		posted := j.UpdatedAt
		if len(posted) > 10 {
			posted = posted[:10]
		}
		out = append(out, domain.Posting{
			Source:        domain.SourceGreenhouse,
			SourceLocalID: strconv.FormatInt(j.ID, 10),
			BoardID:       s.token,
			Company:       s.company,
			Title:         title,
			Location:      loc,
			URL:           strings.TrimSpace(j.AbsoluteURL),
			PostedDate:    posted,
		})
	}
	if skipped > 0 {
		log.Printf("[greenhouse] board=%s skipped %d records with missing fields", s.token, skipped)
	}
	return out, nil
}
