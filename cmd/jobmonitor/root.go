package main

import (
	"fmt"
	"log"
	"os"

	"job-monitor/internal/config"
	"job-monitor/internal/rank"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "jobmonitor",
	Short:         "jobmonitor polls company job boards and reports new relevant postings",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// .env is optional; it only feeds the SMTP_PASSWORD fallback
	_ = godotenv.Load(".env")

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file path")
}

// loadConfig loads, normalizes, and validates the config, then compiles
// the relevance policy. Any problem here aborts before scraping.
func loadConfig() (config.Config, rank.Policy, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, rank.Policy{}, fmt.Errorf("load config %s: %w", cfgPath, err)
	}

	cfg, v := config.NormalizeAndValidate(cfg)
	for _, w := range v.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !v.OK() {
		for _, e := range v.Errors {
			fmt.Fprintf(os.Stderr, "config error: %s\n", e)
		}
		return config.Config{}, rank.Policy{}, fmt.Errorf("invalid config %s", cfgPath)
	}

	policy, err := rank.PolicyFromConfig(cfg)
	if err != nil {
		return config.Config{}, rank.Policy{}, fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}
	return cfg, policy, nil
}
