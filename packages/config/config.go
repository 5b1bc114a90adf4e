package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"reponavigator/packages/repository"
)

const DefaultConfigPath = "config/development.yaml"

const (
	BackendGenerativeAI = "generative-ai-go"
	BackendGenAI        = "genai"
)

// Config represents the application configuration
type Config struct {
	AI       AIConfig       `yaml:"ai"`
	Guide    GuideConfig    `yaml:"guide"`
	Tree     TreeConfig     `yaml:"tree"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Server   ServerConfig   `yaml:"server"`
	Webhook  WebhookConfig  `yaml:"webhook"`
}

// AIConfig selects the text-generation backend and model.
type AIConfig struct {
	Backend string `yaml:"backend"`
	Model   string `yaml:"model"`
}

// GuideConfig holds prompt truncation limits. The tour and summary limits
// are independent on purpose.
type GuideConfig struct {
	TourReadmeMaxChars     int    `yaml:"tour_readme_max_chars"`
	SummaryReadmeMaxChars  int    `yaml:"summary_readme_max_chars"`
	ImportantFilesMaxChars int    `yaml:"important_files_max_chars"`
	EmptyFilesPlaceholder  string `yaml:"empty_files_placeholder"`
}

// TreeConfig controls tree filtering and important-file selection.
type TreeConfig struct {
	MaxDepth        int      `yaml:"max_depth"`
	IgnoreDirs      []string `yaml:"ignore_dirs"`
	ImportantFiles  []string `yaml:"important_files"`
	DedupeImportant bool     `yaml:"dedupe_important"`
}

// PipelineConfig contains pipeline execution options
type PipelineConfig struct {
	ParallelFetch bool `yaml:"parallel_fetch"`
}

// ServerConfig configures the browser form session.
type ServerConfig struct {
	Address       string `yaml:"address"`
	MaxSessions   int    `yaml:"max_sessions"`
	SessionCookie string `yaml:"session_cookie"`
}

// WebhookConfig configures the GitHub App mode.
type WebhookConfig struct {
	TriggerLabel     string `yaml:"trigger_label"`
	LabelColor       string `yaml:"label_color"`
	LabelDescription string `yaml:"label_description"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			Backend: BackendGenerativeAI,
			Model:   "gemini-2.5-flash",
		},
		Guide: GuideConfig{
			TourReadmeMaxChars:     8000,
			SummaryReadmeMaxChars:  12000,
			ImportantFilesMaxChars: 4000,
			EmptyFilesPlaceholder:  "No high-signal files detected.",
		},
		Tree: TreeConfig{
			MaxDepth:        repository.DefaultMaxDepth,
			IgnoreDirs:      append([]string(nil), repository.DefaultIgnoreDirs...),
			ImportantFiles:  append([]string(nil), repository.DefaultImportantFiles...),
			DedupeImportant: true,
		},
		Server: ServerConfig{
			Address:       ":8080",
			MaxSessions:   1024,
			SessionCookie: "reponavigator_session",
		},
		Webhook: WebhookConfig{
			TriggerLabel:     "reponavigator-guide",
			LabelColor:       "238636",
			LabelDescription: "Generate a developer onboarding guide",
		},
	}
}

// LoadConfig loads configuration from the specified file on top of the
// defaults. An empty path falls back to DefaultConfigPath, which may be absent.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate checks the values the pipeline depends on.
func (c *Config) Validate() error {
	switch c.AI.Backend {
	case BackendGenerativeAI, BackendGenAI:
	default:
		return fmt.Errorf("unknown ai backend %q", c.AI.Backend)
	}
	if c.AI.Model == "" {
		return errors.New("ai model is required")
	}
	if c.Guide.TourReadmeMaxChars <= 0 || c.Guide.SummaryReadmeMaxChars <= 0 || c.Guide.ImportantFilesMaxChars <= 0 {
		return errors.New("truncation limits must be positive")
	}
	if c.Guide.EmptyFilesPlaceholder == "" {
		return errors.New("empty_files_placeholder must not be empty")
	}
	if c.Tree.MaxDepth < 0 {
		return fmt.Errorf("tree max_depth must not be negative, got %d", c.Tree.MaxDepth)
	}
	if c.Server.MaxSessions <= 0 {
		return errors.New("server max_sessions must be positive")
	}
	return nil
}
