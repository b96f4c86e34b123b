package rank

import (
	"strings"

	"job-monitor/internal/domain"
)

// Score weights. A high-priority title hit alone clears the
// qualification gate; a lone keyword hit does too.
const (
	weightHighPriority   = 50
	weightMediumPriority = 30
	weightKeyword        = 10
	weightLocation       = 10
)

type Scorer struct {
	Policy Policy
}

// Score evaluates one posting against the policy. (0, nil) means
// disqualified; anything that survives has score > 0. The step order
// matters: exclusions run before any bonus can accumulate, and the
// qualification gate sees the title and keyword bonuses but not the
// location bonus.
func (s Scorer) Score(p domain.Posting) (int, []string) {
	title := strings.ToLower(p.Title)
	desc := strings.ToLower(p.Snippet)
	loc := strings.ToLower(p.Location)
	combined := title + " " + desc + " " + loc

	// Exclusions first. Exclude keywords look at the title only.
	for _, kw := range s.Policy.ExcludeKeywords {
		if strings.Contains(title, kw) {
			return 0, nil
		}
	}
	// Any mention of "remote" voids every location exclusion.
	for _, x := range s.Policy.ExcludedLocations {
		if strings.Contains(loc, x) && !strings.Contains(loc, "remote") {
			return 0, nil
		}
	}

	score := 0
	var reasons []string

	// At most one bonus per priority tier; both tiers can stack.
	for _, pat := range s.Policy.HighPriority {
		if pat.Match(title) {
			score += weightHighPriority
			reasons = append(reasons, "title:"+pat.String())
			break
		}
	}
	for _, pat := range s.Policy.MediumPriority {
		if pat.Match(title) {
			score += weightMediumPriority
			reasons = append(reasons, "title:"+pat.String())
			break
		}
	}

	keywordFound := false
	for _, kw := range s.Policy.RequiredKeywords {
		if strings.Contains(combined, kw) {
			score += weightKeyword
			reasons = append(reasons, kw)
			keywordFound = true
		}
	}

	// Needs a keyword hit or a high-priority title hit to survive.
	if !keywordFound && score < weightHighPriority {
		return 0, nil
	}

	for _, pref := range s.Policy.PreferredLocations {
		if strings.Contains(loc, pref) {
			score += weightLocation
			reasons = append(reasons, "location:"+pref)
			break
		}
	}

	return score, reasons
}
