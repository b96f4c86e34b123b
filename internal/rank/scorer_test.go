package rank

import (
	"testing"

	"job-monitor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) Policy {
	t.Helper()
	high, err := compileAll([]string{"machine learning", "ml engineer"})
	require.NoError(t, err)
	med, err := compileAll([]string{"data scientist"})
	require.NoError(t, err)
	return Policy{
		HighPriority:       high,
		MediumPriority:     med,
		RequiredKeywords:   []string{"python", "pytorch"},
		ExcludeKeywords:    []string{"senior", "director"},
		PreferredLocations: []string{"san francisco", "remote"},
		ExcludedLocations:  []string{"germany", "india"},
	}
}

func posting(title, location, snippet string) domain.Posting {
	return domain.Posting{
		Source:        domain.SourceGreenhouse,
		SourceLocalID: "1",
		BoardID:       "acme",
		Company:       "Acme",
		Title:         title,
		Location:      location,
		URL:           "https://example.com/1",
		Snippet:       snippet,
	}
}

func TestExcludeKeywordIsAbsolute(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	// high-priority pattern would match, but the exclude keyword wins
	score, reasons := s.Score(posting("Senior Machine Learning Engineer", "San Francisco", "python everywhere"))
	assert.Zero(t, score)
	assert.Empty(t, reasons)
}

func TestExcludeKeywordChecksTitleOnly(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	// "senior" in the snippet must not disqualify
	score, _ := s.Score(posting("Python Developer", "Unknown", "reports to a senior manager"))
	assert.Greater(t, score, 0)
}

func TestExcludedLocationDisqualifies(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	score, reasons := s.Score(posting("Python Developer", "Berlin, Germany", ""))
	assert.Zero(t, score)
	assert.Empty(t, reasons)
}

func TestRemoteCarveOutBeatsExcludedLocation(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	score, reasons := s.Score(posting("Python Developer", "Remote - Germany", ""))
	assert.Equal(t, 20, score) // keyword 10 + preferred "remote" 10
	assert.Equal(t, []string{"python", "location:remote"}, reasons)
}

func TestHighPriorityAloneSurvivesGate(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	// no required keyword anywhere, but the high-priority pattern hits
	score, reasons := s.Score(posting("Machine Learning Engineer", "Unknown", ""))
	assert.GreaterOrEqual(t, score, 50)
	assert.Contains(t, reasons, "title:machine learning")
}

func TestMediumPriorityAloneIsGated(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	// medium-priority match only: 30 < 50 and no keyword, so disqualified
	score, reasons := s.Score(posting("Data Scientist", "Unknown", ""))
	assert.Zero(t, score)
	assert.Empty(t, reasons)
}

func TestHighAndMediumStack(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	score, reasons := s.Score(posting("Machine Learning Data Scientist", "Unknown", ""))
	assert.Equal(t, 80, score)
	assert.Equal(t, []string{"title:machine learning", "title:data scientist"}, reasons)
}

func TestSingleKeywordScoresTen(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	score, reasons := s.Score(posting("Python Developer", "Unknown", ""))
	assert.Equal(t, 10, score)
	assert.Equal(t, []string{"python"}, reasons)
}

func TestEveryKeywordCounts(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	score, reasons := s.Score(posting("Python Developer", "Unknown", "pytorch experience required"))
	assert.Equal(t, 20, score)
	assert.Equal(t, []string{"python", "pytorch"}, reasons)
}

func TestNoMatchesDisqualified(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	score, reasons := s.Score(posting("Accountant", "Unknown", ""))
	assert.Zero(t, score)
	assert.Empty(t, reasons)
}

func TestPreferredLocationFirstMatchOnly(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	// location matches both preferred entries; only the first listed counts
	score, reasons := s.Score(posting("Python Developer", "San Francisco (Remote)", ""))
	assert.Equal(t, 20, score)
	assert.Equal(t, []string{"python", "location:san francisco"}, reasons)
}

func TestKeywordMatchIsCaseInsensitive(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	score, _ := s.Score(posting("PYTHON DEVELOPER", "Unknown", ""))
	assert.Equal(t, 10, score)
}

func TestScoreZeroMeansEmptyReasons(t *testing.T) {
	s := Scorer{Policy: testPolicy(t)}

	cases := []domain.Posting{
		posting("Senior Python Developer", "Remote", ""),   // exclude keyword
		posting("Python Developer", "Munich, Germany", ""), // exclude location
		posting("Gardener", "Unknown", ""),                 // nothing matches
	}
	for _, p := range cases {
		score, reasons := s.Score(p)
		assert.Zero(t, score, "title=%s", p.Title)
		assert.Empty(t, reasons, "title=%s", p.Title)
	}
}

func TestRegexPatternAgainstTitle(t *testing.T) {
	high, err := compileAll([]string{`ml|machine.learning`})
	require.NoError(t, err)
	s := Scorer{Policy: Policy{HighPriority: high}}

	score, reasons := s.Score(posting("Machine-Learning Platform Lead", "Unknown", ""))
	assert.Equal(t, 50, score)
	assert.Equal(t, []string{"title:ml|machine.learning"}, reasons)
}
