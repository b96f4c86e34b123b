package poll

import (
	"context"
	"fmt"
	"log"
	"time"

	"job-monitor/internal/archive"
	"job-monitor/internal/config"
	"job-monitor/internal/domain"
	"job-monitor/internal/fetch"
	"job-monitor/internal/rank"
	"job-monitor/internal/scrape"
	"job-monitor/internal/track"
)

// Result is what one pipeline pass hands to the emitters: the unseen
// matches and the full matching set, both in merge order. SaveErr set
// means the seen-state write failed — the results are still good, but
// next run will re-surface today's findings.
type Result struct {
	New         []domain.ScoredPosting
	AllMatching []domain.ScoredPosting
	SeenBefore  int
	SaveErr     error
}

// Pipeline owns one run: fetch every board, score, merge, split
// new/seen, persist the seen map, append new matches to the archive.
type Pipeline struct {
	Cfg     config.Config
	Policy  rank.Policy
	Store   track.Store
	Client  *fetch.Client
	Archive *archive.DB // nil disables history
	Workers int

	// Sources overrides the config-derived source list; tests inject
	// canned sources here.
	Sources []scrape.Source
}

func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	// Seen state loads before any fetch; an unreadable file is fatal.
	seen, err := p.Store.Load()
	if err != nil {
		return Result{}, fmt.Errorf("load seen state: %w", err)
	}
	log.Printf("[poll] previously seen: %d postings", len(seen))

	sources := p.Sources
	if sources == nil {
		descriptors := scrape.DescriptorsFromConfig(p.Cfg)
		sources = make([]scrape.Source, len(descriptors))
		for i, d := range descriptors {
			sources[i] = scrape.BuildSource(d, p.Client)
		}
	}

	slots := scrape.RunAll(ctx, sources, p.Workers)

	scorer := rank.Scorer{Policy: p.Policy}
	today := time.Now().Format("2006-01-02")

	var matching []domain.ScoredPosting
	for i, postings := range slots {
		kept := 0
		for _, posting := range postings {
			score, reasons := scorer.Score(posting)
			if score <= 0 {
				continue
			}
			matching = append(matching, domain.ScoredPosting{
				Posting:   posting,
				Score:     score,
				Reasons:   reasons,
				FirstSeen: today,
			})
			kept++
		}
		log.Printf("[%s] %d fetched, %d matching", sources[i].Name(), len(postings), kept)
	}

	fresh, old := track.FilterNew(matching, seen)
	track.Update(seen, fresh)

	res := Result{
		New:         fresh,
		AllMatching: matching,
		SeenBefore:  len(old),
	}

	if err := p.Store.Save(seen); err != nil {
		// Not fatal for this run's reports, but the operator must know.
		log.Printf("[state] WARNING: seen state not saved: %v", err)
		log.Printf("[state] next run will re-surface today's findings")
		res.SaveErr = err
	}

	if p.Archive != nil {
		added := 0
		for _, sp := range fresh {
			ok, err := p.Archive.InsertIfNew(ctx, sp)
			if err != nil {
				log.Printf("[archive] insert error: %v title=%q", err, sp.Title)
				continue
			}
			if ok {
				added++
			}
		}
		log.Printf("[archive] recorded %d postings", added)
	}

	log.Printf("[poll] %d matching, %d new, %d seen before",
		len(matching), len(fresh), len(old))
	return res, nil
}
