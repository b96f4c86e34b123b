package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"job-monitor/internal/archive"

	"github.com/spf13/cobra"
)

var (
	flagSort   string
	flagWindow string
	flagLimit  int
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List archived postings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Archive.Path == "" {
			return fmt.Errorf("archive.path not configured")
		}

		db, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer db.Close()

		rows, err := db.List(cmd.Context(), archive.ListOpts{
			Sort:   flagSort,
			Window: flagWindow,
			Limit:  flagLimit,
		})
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SCORE\tFIRST SEEN\tCOMPANY\tTITLE\tLOCATION\tREASONS")
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				r.Score, r.FirstSeen, r.Company, r.Title, r.Location,
				strings.Join(r.Reasons, ","))
		}
		return tw.Flush()
	},
}

func init() {
	jobsCmd.Flags().StringVar(&flagSort, "sort", "score", "sort by score|date|company|title")
	jobsCmd.Flags().StringVar(&flagWindow, "window", "7d", "time window: 24h|7d|all")
	jobsCmd.Flags().IntVar(&flagLimit, "limit", 50, "max rows")
	rootCmd.AddCommand(jobsCmd)
}
