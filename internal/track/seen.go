package track

import "job-monitor/internal/domain"

// Record is what we remember about a posting once it has been reported.
// The schema is additive-only: new fields get omitempty, existing ones
// never change meaning, so old seen files stay readable.
type Record struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	FirstSeen string `json:"first_seen"`
	URL       string `json:"url"`
}

// Map is the whole seen-state, keyed by GlobalID.
type Map map[string]Record

// FilterNew partitions postings into unseen and already-seen, keeping
// input order within each partition.
func FilterNew(in []domain.ScoredPosting, seen Map) (fresh, old []domain.ScoredPosting) {
	for _, p := range in {
		if _, ok := seen[GlobalID(p.Posting)]; ok {
			old = append(old, p)
		} else {
			fresh = append(fresh, p)
		}
	}
	return fresh, old
}

// Update records the fresh partition into the map. Existing entries for
// other ids are never touched; nothing is ever pruned.
func Update(m Map, fresh []domain.ScoredPosting) {
	for _, p := range fresh {
		m[GlobalID(p.Posting)] = Record{
			Title:     p.Title,
			Company:   p.Company,
			FirstSeen: p.FirstSeen,
			URL:       p.URL,
		}
	}
}
