package rank

import (
	"sort"

	"job-monitor/internal/domain"
)

// SortByScore returns a copy sorted by descending score. The sort is
// stable so equal scores keep their encounter order and repeated runs
// over the same input produce identical output.
func SortByScore(in []domain.ScoredPosting) []domain.ScoredPosting {
	out := make([]domain.ScoredPosting, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// TopN is SortByScore truncated to the first n entries.
func TopN(in []domain.ScoredPosting, n int) []domain.ScoredPosting {
	out := SortByScore(in)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

type CompanyGroup struct {
	Company  string
	Postings []domain.ScoredPosting
}

// GroupByCompany groups for report rendering: biggest groups first,
// equal sizes keep encounter order, postings within a group sorted by
// descending score (stable).
func GroupByCompany(in []domain.ScoredPosting) []CompanyGroup {
	index := map[string]int{}
	var groups []CompanyGroup
	for _, p := range in {
		i, ok := index[p.Company]
		if !ok {
			i = len(groups)
			index[p.Company] = i
			groups = append(groups, CompanyGroup{Company: p.Company})
		}
		groups[i].Postings = append(groups[i].Postings, p)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Postings) > len(groups[j].Postings)
	})
	for i := range groups {
		groups[i].Postings = SortByScore(groups[i].Postings)
	}
	return groups
}
