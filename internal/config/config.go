package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Company struct {
	Name         string `yaml:"name"`
	GreenhouseID string `yaml:"greenhouse_id"`
	LeverID      string `yaml:"lever_id"`
	CareersURL   string `yaml:"careers_url"`
}

type Config struct {
	Notification struct {
		Email     string `yaml:"email"`
		SendEmpty bool   `yaml:"send_empty"`
	} `yaml:"notification"`

	Companies []Company `yaml:"companies"`

	TitlePatterns struct {
		HighPriority   []string `yaml:"high_priority"`
		MediumPriority []string `yaml:"medium_priority"`
	} `yaml:"title_patterns"`

	RequiredKeywords []string `yaml:"required_keywords"`
	ExcludeKeywords  []string `yaml:"exclude_keywords"`

	Locations struct {
		Preferred []string `yaml:"preferred"`
		Exclude   []string `yaml:"exclude"`
	} `yaml:"locations"`

	Output struct {
		Dir      string `yaml:"dir"`       // reports land here
		SeenPath string `yaml:"seen_path"` // persistent seen-postings file
	} `yaml:"output"`

	Archive struct {
		Path string `yaml:"path"` // sqlite history; empty disables
	} `yaml:"archive"`

	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "output"
	}
	if cfg.Output.SeenPath == "" {
		cfg.Output.SeenPath = "seen_jobs.json"
	}
	return cfg, nil
}
