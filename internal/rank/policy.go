package rank

import (
	"strings"

	"job-monitor/internal/config"
)

// Policy is the compiled relevance policy, immutable for the run.
type Policy struct {
	HighPriority       []Pattern
	MediumPriority     []Pattern
	RequiredKeywords   []string // lower-cased
	ExcludeKeywords    []string
	PreferredLocations []string
	ExcludedLocations  []string
}

// PolicyFromConfig compiles the config pattern lists. Any malformed
// pattern is a hard error; the caller aborts before scraping.
func PolicyFromConfig(cfg config.Config) (Policy, error) {
	var p Policy
	var err error

	if p.HighPriority, err = compileAll(cfg.TitlePatterns.HighPriority); err != nil {
		return Policy{}, err
	}
	if p.MediumPriority, err = compileAll(cfg.TitlePatterns.MediumPriority); err != nil {
		return Policy{}, err
	}

	lower := func(xs []string) []string {
		out := make([]string, 0, len(xs))
		for _, x := range xs {
			x = strings.ToLower(strings.TrimSpace(x))
			if x != "" {
				out = append(out, x)
			}
		}
		return out
	}

	p.RequiredKeywords = lower(cfg.RequiredKeywords)
	p.ExcludeKeywords = lower(cfg.ExcludeKeywords)
	p.PreferredLocations = lower(cfg.Locations.Preferred)
	p.ExcludedLocations = lower(cfg.Locations.Exclude)

	return p, nil
}
