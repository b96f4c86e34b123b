package domain

// SourceKind names where a posting came from.
type SourceKind string

const (
	SourceGreenhouse  SourceKind = "greenhouse"
	SourceLever       SourceKind = "lever"
	SourceCareersPage SourceKind = "careers_page"
)

// Posting is the canonical, source-agnostic shape every normalizer maps into.
// All fields are plain strings; empty means unknown, never nil.
type Posting struct {
	Source        SourceKind
	SourceLocalID string // unique within Source + board
	BoardID       string // greenhouse board token / lever slug; empty for careers pages
	Company       string
	Title         string
	Location      string
	URL           string
	Snippet       string // first chunk of the description, when the source has one
	PostedDate    string // YYYY-MM-DD or empty
	Salary        string
}

// ScoredPosting is a Posting that survived relevance scoring.
// It only exists with Score > 0; score-0 postings are dropped earlier.
type ScoredPosting struct {
	Posting
	Score     int
	Reasons   []string // ordered: title:<pattern>, bare keyword, location:<substring>
	FirstSeen string   // YYYY-MM-DD, stamped when the posting is scored
}
