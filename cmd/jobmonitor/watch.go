package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"job-monitor/internal/archive"
	"job-monitor/internal/events"
	"job-monitor/internal/scheduler"
	"job-monitor/internal/web"

	"github.com/spf13/cobra"
)

var (
	flagInterval time.Duration
	flagAddr     string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the pipeline on a timer and serve a local status API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, policy, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var arch *archive.DB
		if cfg.Archive.Path != "" {
			arch, err = archive.Open(cfg.Archive.Path)
			if err != nil {
				return fmt.Errorf("open archive: %w", err)
			}
			defer arch.Close()
		}

		hub := events.NewHub()
		status := &web.Status{}

		go scheduler.Every(ctx, flagInterval, "watch", func(ctx context.Context) error {
			res, err := runPipeline(ctx, cfg, policy, arch)
			if err != nil {
				status.Record(0, err)
				hub.Publish(events.RunFinished(0, 0, err))
				return err
			}
			status.Record(len(res.New), res.SaveErr)
			hub.Publish(events.RunFinished(len(res.AllMatching), len(res.New), res.SaveErr))
			return nil
		})

		srv := web.NewServer(arch, hub, status)
		log.Printf("[watch] interval=%s serving http://%s", flagInterval, flagAddr)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Listen(flagAddr) }()

		select {
		case <-ctx.Done():
			log.Printf("[watch] shutting down")
			return nil
		case err := <-errCh:
			return err
		}
	},
}

func init() {
	watchCmd.Flags().DurationVar(&flagInterval, "interval", 30*time.Minute, "time between pipeline passes")
	watchCmd.Flags().StringVar(&flagAddr, "addr", "127.0.0.1:8571", "local address for the status API")
	rootCmd.AddCommand(watchCmd)
}
