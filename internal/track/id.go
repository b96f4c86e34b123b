package track

import (
	"fmt"

	"job-monitor/internal/domain"
)

// GlobalID derives the stable cross-run dedup key for a posting.
// API-backed sources embed the board identifier plus the upstream id;
// careers pages have no upstream id, so their SourceLocalID is already
// a content hash of company + title (a retitled posting therefore
// resurfaces as new — accepted, not worth papering over).
func GlobalID(p domain.Posting) string {
	switch p.Source {
	case domain.SourceGreenhouse:
		return fmt.Sprintf("gh_%s_%s", p.BoardID, p.SourceLocalID)
	case domain.SourceLever:
		return fmt.Sprintf("lever_%s_%s", p.BoardID, p.SourceLocalID)
	case domain.SourceCareersPage:
		return "web_" + p.SourceLocalID
	default:
		return fmt.Sprintf("%s_%s_%s", p.Source, p.BoardID, p.SourceLocalID)
	}
}
