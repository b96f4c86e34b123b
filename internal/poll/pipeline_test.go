package poll

import (
	"context"
	"errors"
	"testing"

	"job-monitor/internal/config"
	"job-monitor/internal/domain"
	"job-monitor/internal/rank"
	"job-monitor/internal/scrape"
	"job-monitor/internal/track"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	name     string
	postings []domain.Posting
	err      error
}

func (f fakeSource) Name() string { return f.name }
func (f fakeSource) Fetch(context.Context) ([]domain.Posting, error) {
	return f.postings, f.err
}

func testPolicy(t *testing.T) rank.Policy {
	t.Helper()
	var cfg config.Config
	cfg.TitlePatterns.HighPriority = []string{"machine learning"}
	cfg.RequiredKeywords = []string{"python"}
	cfg.ExcludeKeywords = []string{"senior"}
	p, err := rank.PolicyFromConfig(cfg)
	require.NoError(t, err)
	return p
}

func gh(board, id, title string) domain.Posting {
	return domain.Posting{
		Source:        domain.SourceGreenhouse,
		SourceLocalID: id,
		BoardID:       board,
		Company:       board,
		Title:         title,
		URL:           "https://example.com/" + id,
	}
}

func pipelineWith(t *testing.T, store track.Store, sources ...scrape.Source) *Pipeline {
	t.Helper()
	return &Pipeline{
		Policy:  testPolicy(t),
		Store:   store,
		Workers: 2,
		Sources: sources,
	}
}

func TestRunScoresAndPartitions(t *testing.T) {
	store := &track.MemStore{}
	p := pipelineWith(t, store,
		fakeSource{name: "greenhouse", postings: []domain.Posting{
			gh("acme", "1", "Machine Learning Engineer"),
			gh("acme", "2", "Senior Python Developer"), // excluded
			gh("acme", "3", "Accountant"),              // no match
		}},
		fakeSource{name: "lever", postings: []domain.Posting{
			gh("globex", "9", "Python Developer"),
		}},
	)

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, res.SaveErr)

	// only scoring survivors, in source order
	require.Len(t, res.AllMatching, 2)
	assert.Equal(t, "Machine Learning Engineer", res.AllMatching[0].Title)
	assert.Equal(t, "Python Developer", res.AllMatching[1].Title)
	assert.Equal(t, res.AllMatching, res.New)

	for _, sp := range res.AllMatching {
		assert.Greater(t, sp.Score, 0)
		assert.NotEmpty(t, sp.Reasons)
		assert.NotEmpty(t, sp.FirstSeen)
	}

	// the seen map was persisted with both survivors
	assert.Len(t, store.M, 2)
	assert.Contains(t, store.M, "gh_acme_1")
	assert.Contains(t, store.M, "gh_globex_9")
}

func TestRunSecondPassFindsNothingNew(t *testing.T) {
	src := fakeSource{name: "greenhouse", postings: []domain.Posting{
		gh("acme", "1", "Machine Learning Engineer"),
		gh("acme", "4", "Python Developer"),
	}}

	store := &track.MemStore{}
	first, err := pipelineWith(t, store, src).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, first.New, 2)

	savedAfterFirst := len(store.M)

	second, err := pipelineWith(t, store, src).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second.New)
	assert.Len(t, second.AllMatching, 2)
	assert.Equal(t, 2, second.SeenBefore)
	assert.Len(t, store.M, savedAfterFirst) // unchanged
}

func TestRunIdempotentWithReset(t *testing.T) {
	src := fakeSource{name: "greenhouse", postings: []domain.Posting{
		gh("acme", "1", "Machine Learning Engineer"),
	}}

	a, err := pipelineWith(t, &track.MemStore{}, src).Run(context.Background())
	require.NoError(t, err)
	b, err := pipelineWith(t, &track.MemStore{}, src).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.AllMatching, b.AllMatching)
	assert.Equal(t, a.New, b.New)
}

func TestRunFailedSourceContributesNothing(t *testing.T) {
	store := &track.MemStore{}
	p := pipelineWith(t, store,
		fakeSource{name: "greenhouse", err: errors.New("board down")},
		fakeSource{name: "lever", postings: []domain.Posting{
			gh("globex", "9", "Python Developer"),
		}},
	)

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.New, 1)
	assert.Equal(t, "Python Developer", res.New[0].Title)
}

func TestRunLoadFailureIsFatal(t *testing.T) {
	store := &track.MemStore{LoadErr: errors.New("corrupt state")}
	_, err := pipelineWith(t, store).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt state")
}

func TestRunSaveFailureStillReports(t *testing.T) {
	store := &track.MemStore{SaveErr: errors.New("disk full")}
	p := pipelineWith(t, store, fakeSource{name: "greenhouse", postings: []domain.Posting{
		gh("acme", "1", "Machine Learning Engineer"),
	}})

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Error(t, res.SaveErr)
	assert.Len(t, res.New, 1)
}
