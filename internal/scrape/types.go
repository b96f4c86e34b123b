package scrape

import (
	"context"

	"job-monitor/internal/config"
	"job-monitor/internal/domain"
	"job-monitor/internal/fetch"
	"job-monitor/internal/scrape/careers"
	"job-monitor/internal/scrape/greenhouse"
	"job-monitor/internal/scrape/lever"
)

// Descriptor names one board to query: a company plus which source kind
// and board identifier to use. A company with both a Greenhouse and a
// Lever board contributes two descriptors.
type Descriptor struct {
	Company    string
	Kind       domain.SourceKind
	Identifier string // board token / lever slug / careers page URL
}

// Source fetches one board and maps its raw payload into canonical
// postings. Implementations never fail a sibling: an error means this
// board contributes nothing this run.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Posting, error)
}

// DescriptorsFromConfig flattens the company list into descriptors,
// keeping config order. The careers page is a fallback used only when
// a company has no API board configured (the original contract).
func DescriptorsFromConfig(cfg config.Config) []Descriptor {
	var out []Descriptor
	for _, c := range cfg.Companies {
		if c.GreenhouseID != "" {
			out = append(out, Descriptor{Company: c.Name, Kind: domain.SourceGreenhouse, Identifier: c.GreenhouseID})
		}
		if c.LeverID != "" {
			out = append(out, Descriptor{Company: c.Name, Kind: domain.SourceLever, Identifier: c.LeverID})
		}
		if c.GreenhouseID == "" && c.LeverID == "" && c.CareersURL != "" {
			out = append(out, Descriptor{Company: c.Name, Kind: domain.SourceCareersPage, Identifier: c.CareersURL})
		}
	}
	return out
}

// BuildSource wires a descriptor to its scraper, all sharing one client.
func BuildSource(d Descriptor, client *fetch.Client) Source {
	switch d.Kind {
	case domain.SourceGreenhouse:
		return greenhouse.New(d.Company, d.Identifier, client)
	case domain.SourceLever:
		return lever.New(d.Company, d.Identifier, client)
	default:
		return careers.New(d.Company, d.Identifier, client)
	}
}
