package careers

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"job-monitor/internal/domain"
	"job-monitor/internal/fetch"
	"job-monitor/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// maxTitles caps how much we trust a single page; past that it's
// probably matching navigation chrome, not listings.
const (
	maxTitles   = 20
	minTitleLen = 6
)

// Source is the best-effort HTML fallback for companies without an API
// board. It guesses at listing markup and can silently miss postings;
// that fragility stays behind the same contract as the API sources.
type Source struct {
	company string
	pageURL string
	client  *fetch.Client
}

func New(company, pageURL string, client *fetch.Client) *Source {
	return &Source{company: company, pageURL: pageURL, client: client}
}

func (s *Source) Name() string { return "careers" }

func (s *Source) Fetch(ctx context.Context) ([]domain.Posting, error) {
	html, err := s.client.Get(ctx, s.pageURL)
	if err != nil {
		return nil, fmt.Errorf("careers page %s: %w", s.pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse careers page %s: %w", s.pageURL, err)
	}

	titles := candidateTitles(doc)

	out := make([]domain.Posting, 0, len(titles))
	for _, title := range titles {
		out = append(out, domain.Posting{
			Source:        domain.SourceCareersPage,
			SourceLocalID: util.ContentID(s.company, title),
			Company:       s.company,
			Title:         title,
			Location:      "See posting",
			URL:           s.pageURL, // no per-job URL; land on the page
		})
	}
	return out, nil
}

// candidateTitles scans for elements whose class mentions job/position/
// title, plus anchors whose href looks like a listing link. Dedupe,
// minimum length, hard cap.
func candidateTitles(doc *goquery.Document) []string {
	seen := map[string]bool{}
	var out []string

	add := func(raw string) {
		if len(out) >= maxTitles {
			return
		}
		t := util.CleanText(raw)
		if len(t) < minTitleLen || util.LooksLikeJunkTitle(t) {
			return
		}
		key := strings.ToLower(t)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, t)
	}

	doc.Find("h1, h2, h3, h4, a, div").Each(func(_ int, sel *goquery.Selection) {
		class, ok := sel.Attr("class")
		if !ok {
			return
		}
		low := strings.ToLower(class)
		if strings.Contains(low, "job") || strings.Contains(low, "position") || strings.Contains(low, "title") {
			add(sel.Text())
		}
	})

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		low := strings.ToLower(href)
		if strings.Contains(low, "job") || strings.Contains(low, "position") ||
			strings.Contains(low, "career") || strings.Contains(low, "opening") {
			add(a.Text())
		}
	})

	return out
}
