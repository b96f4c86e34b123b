package scrape

import (
	"context"
	"log"
	"time"

	"job-monitor/internal/domain"

	"golang.org/x/sync/errgroup"
)

const perSourceTimeout = 2 * time.Minute

// RunAll fetches every source with a bounded worker set and returns one
// result slot per source, indexed by position. Concatenating the slots
// in order gives the same merged sequence a sequential loop would, so
// downstream ranking and dedup stay deterministic. A failed source logs
// and leaves its slot empty; it never cancels siblings.
func RunAll(ctx context.Context, sources []Source, workers int) [][]domain.Posting {
	if workers <= 0 {
		workers = 4
	}

	slots := make([][]domain.Posting, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, perSourceTimeout)
			defer cancel()

			postings, err := src.Fetch(fctx)
			if err != nil {
				log.Printf("[%s] error: %v", src.Name(), err)
				return nil // best-effort: don't cancel siblings
			}
			slots[i] = postings
			return nil
		})
	}
	_ = g.Wait()

	return slots
}

// Merge concatenates the slots in source order.
func Merge(slots [][]domain.Posting) []domain.Posting {
	var out []domain.Posting
	for _, s := range slots {
		out = append(out, s...)
	}
	return out
}
