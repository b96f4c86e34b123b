package lever

import (
	"context"
	"fmt"
	"log"
	"strings"

	"job-monitor/internal/domain"
	"job-monitor/internal/fetch"
	"job-monitor/internal/scrape/util"
)

const DefaultBaseURL = "https://api.lever.co"

const snippetLen = 200

// Source reads one Lever board via the public postings API.
type Source struct {
	company string
	slug    string
	client  *fetch.Client

	BaseURL string // overridable for tests
}

func New(company, slug string, client *fetch.Client) *Source {
	return &Source{
		company: company,
		slug:    slug,
		client:  client,
		BaseURL: DefaultBaseURL,
	}
}

func (s *Source) Name() string { return "lever" }

type leverPosting struct {
	ID         string `json:"id"`
	Text       string `json:"text"` // title
	HostedURL  string `json:"hostedUrl"`
	Categories struct {
		Location string `json:"location"`
	} `json:"categories"`
	DescriptionPlain string `json:"descriptionPlain"`
}

func (s *Source) Fetch(ctx context.Context) ([]domain.Posting, error) {
	url := fmt.Sprintf("%s/v0/postings/%s?mode=json", s.BaseURL, s.slug)

	var postings []leverPosting
	if err := s.client.GetJSON(ctx, url, &postings); err != nil {
		return nil, fmt.Errorf("lever board %s: %w", s.slug, err)
	}

	out := make([]domain.Posting, 0, len(postings))
	skipped := 0
	for _, p := range postings {
		title := util.CleanText(p.Text)
		if p.ID == "" || title == "" || p.HostedURL == "" {
			skipped++
			continue
		}
		loc := util.NormalizeLocation(p.Categories.Location)
		if loc == "" {
			loc = "Unknown"
		}
		snippet := p.DescriptionPlain
		if len(snippet) > snippetLen {
			snippet = snippet[:snippetLen]
		}
		out = append(out, domain.Posting{
			Source:        domain.SourceLever,
			SourceLocalID: p.ID,
			BoardID:       s.slug,
			Company:       s.company,
			Title:         title,
			Location:      loc,
			URL:           strings.TrimSpace(p.HostedURL),
			Snippet:       snippet,
		})
	}
	if skipped > 0 {
		log.Printf("[lever] board=%s skipped %d records with missing fields", s.slug, skipped)
	}
	return out, nil
}
