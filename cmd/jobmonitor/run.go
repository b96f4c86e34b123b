package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"job-monitor/internal/archive"
	"job-monitor/internal/config"
	"job-monitor/internal/domain"
	"job-monitor/internal/fetch"
	"job-monitor/internal/notify"
	"job-monitor/internal/poll"
	"job-monitor/internal/rank"
	"job-monitor/internal/report"
	"job-monitor/internal/secrets"
	"job-monitor/internal/track"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
)

var (
	flagAll   bool
	flagEmail bool
	flagSend  bool
	flagQuiet bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scrape-score-report pass",
	Long: `Fetches every configured board, scores postings against the relevance
policy, splits new from previously seen, and writes the reports.

Exit code is grep-style: 0 when new postings were found, 1 when none.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, policy, err := loadConfig()
		if err != nil {
			return err
		}

		res, err := runPipeline(cmd.Context(), cfg, policy, nil)
		if err != nil {
			return err
		}

		display := res.New
		isNew := true
		if flagAll {
			display = res.AllMatching
			isNew = false
		}

		if !flagQuiet {
			report.Console(os.Stdout, display, isNew, time.Now())
		}

		mdPath := filepath.Join(cfg.Output.Dir, "new_jobs.md")
		md := report.Markdown(display, isNew, time.Now())
		if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write markdown report: %w", err)
		}
		log.Printf("[report] results saved to %s", mdPath)

		if flagEmail || flagSend {
			emitEmail(cfg, display)
		}

		if res.SaveErr != nil {
			os.Exit(2)
		}
		if len(display) == 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&flagAll, "all", false, "report every matching posting, not just new ones")
	runCmd.Flags().BoolVar(&flagEmail, "email", false, "write the email payload artifact")
	runCmd.Flags().BoolVar(&flagSend, "send", false, "deliver the email over SMTP (implies --email)")
	runCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "skip the console report")
	rootCmd.AddCommand(runCmd)
}

// runPipeline builds the shared plumbing and runs one pass. The flock
// next to the seen file keeps two overlapping runs from interleaving
// the whole-map rewrite.
func runPipeline(ctx context.Context, cfg config.Config, policy rank.Policy, arch *archive.DB) (poll.Result, error) {
	lock := flock.New(cfg.Output.SeenPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return poll.Result{}, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return poll.Result{}, fmt.Errorf("another jobmonitor run is already in progress")
	}
	defer func() { _ = lock.Unlock() }()

	if arch == nil && cfg.Archive.Path != "" {
		a, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return poll.Result{}, fmt.Errorf("open archive: %w", err)
		}
		defer a.Close()
		arch = a
	}

	p := &poll.Pipeline{
		Cfg:     cfg,
		Policy:  policy,
		Store:   track.FileStore{Path: cfg.Output.SeenPath},
		Client:  fetch.NewClient(30*time.Second, fetch.NewHostLimiter(2, 4)),
		Archive: arch,
		Workers: 4,
	}
	return p.Run(ctx)
}

// emitEmail writes the delivery artifact and, with --send, pushes it
// over SMTP. Anything that goes wrong here is a warning; the reports
// already landed.
func emitEmail(cfg config.Config, display []domain.ScoredPosting) {
	if len(display) == 0 && !cfg.Notification.SendEmpty {
		return
	}
	if cfg.Notification.Email == "" {
		log.Printf("[email] notification.email not set; skipping")
		return
	}

	now := time.Now()
	payload := notify.NewPayload(
		cfg.Notification.Email,
		report.EmailSubject(len(display), now),
		report.EmailHTML(display, now),
		now,
	)

	path := filepath.Join(cfg.Output.Dir, "email_to_send.json")
	if err := payload.WriteFile(path); err != nil {
		log.Printf("[email] warning: %v", err)
		return
	}
	log.Printf("[email] payload prepared for %s", payload.To)

	if !flagSend {
		return
	}
	pw, err := secrets.GetSMTPPassword(secrets.SMTPKeyringAccount(cfg))
	if err != nil {
		log.Printf("[email] warning: %v", err)
		return
	}
	if err := notify.SendSMTP(cfg, pw, payload); err != nil {
		log.Printf("[email] warning: delivery failed: %v", err)
		return
	}
	log.Printf("[email] sent to %s", payload.To)
}
