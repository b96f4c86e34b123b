package rank

import (
	"testing"

	"job-monitor/internal/domain"

	"github.com/stretchr/testify/assert"
)

func scored(company, title string, score int) domain.ScoredPosting {
	return domain.ScoredPosting{
		Posting: domain.Posting{Company: company, Title: title},
		Score:   score,
	}
}

func titles(in []domain.ScoredPosting) []string {
	out := make([]string, len(in))
	for i, p := range in {
		out[i] = p.Title
	}
	return out
}

func TestSortByScoreStableTies(t *testing.T) {
	in := []domain.ScoredPosting{
		scored("A", "first", 10),
		scored("B", "second", 50),
		scored("C", "third", 10),
		scored("D", "fourth", 50),
	}
	out := SortByScore(in)
	assert.Equal(t, []string{"second", "fourth", "first", "third"}, titles(out))
	// input untouched
	assert.Equal(t, "first", in[0].Title)
}

func TestSortByScoreDeterministic(t *testing.T) {
	in := []domain.ScoredPosting{
		scored("A", "a", 30), scored("B", "b", 30), scored("C", "c", 30),
	}
	first := titles(SortByScore(in))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, titles(SortByScore(in)))
	}
}

func TestTopN(t *testing.T) {
	in := []domain.ScoredPosting{
		scored("A", "low", 10),
		scored("B", "high", 90),
		scored("C", "mid", 40),
	}
	out := TopN(in, 2)
	assert.Equal(t, []string{"high", "mid"}, titles(out))

	assert.Len(t, TopN(in, 10), 3)
	assert.Empty(t, TopN(nil, 5))
}

func TestGroupByCompanyOrder(t *testing.T) {
	in := []domain.ScoredPosting{
		scored("Acme", "a1", 10),
		scored("Globex", "g1", 80),
		scored("Acme", "a2", 60),
		scored("Initech", "i1", 20),
		scored("Globex", "g2", 40),
		scored("Acme", "a3", 30),
	}
	groups := GroupByCompany(in)

	assert.Equal(t, "Acme", groups[0].Company) // 3 postings
	assert.Equal(t, "Globex", groups[1].Company)
	assert.Equal(t, "Initech", groups[2].Company)

	// within-group order is by descending score
	assert.Equal(t, []string{"a2", "a3", "a1"}, titles(groups[0].Postings))
	assert.Equal(t, []string{"g1", "g2"}, titles(groups[1].Postings))
}

func TestGroupByCompanyTiesKeepEncounterOrder(t *testing.T) {
	in := []domain.ScoredPosting{
		scored("Globex", "g1", 10),
		scored("Acme", "a1", 90),
	}
	groups := GroupByCompany(in)
	assert.Equal(t, "Globex", groups[0].Company)
	assert.Equal(t, "Acme", groups[1].Company)
}
