package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Performance PerformanceConfig `yaml:"performance"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type OpenAIConfig struct {
	TranscribeModel string  `yaml:"transcribe_model"`
	SummaryModel    string  `yaml:"summary_model"`
	Temperature     float32 `yaml:"temperature"`
	UploadLimitMiB  int     `yaml:"upload_limit_mib"`
}

type PipelineConfig struct {
	ChunkLengthSec int    `yaml:"chunk_length_sec"`
	TempDir        string `yaml:"temp_dir"`
}

type PerformanceConfig struct {
	Concurrency        int `yaml:"concurrency"`
	MaxConcurrentFiles int `yaml:"max_concurrent_files"`
}

// PathsConfig is only consulted in watch mode; one-shot runs ignore it.
type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML config file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Pipeline.ChunkLengthSec < 0 {
		return fmt.Errorf("pipeline.chunk_length_sec must be positive")
	}
	if c.Performance.Concurrency < 0 {
		return fmt.Errorf("performance.concurrency must be at least 1")
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("openai.temperature must be between 0 and 2")
	}

	if c.OpenAI.TranscribeModel == "" {
		c.OpenAI.TranscribeModel = "whisper-1"
	}
	if c.OpenAI.SummaryModel == "" {
		c.OpenAI.SummaryModel = "gpt-4o-mini"
	}
	if c.OpenAI.Temperature == 0 {
		c.OpenAI.Temperature = 0.3
	}
	if c.OpenAI.UploadLimitMiB == 0 {
		c.OpenAI.UploadLimitMiB = 24
	}
	if c.Pipeline.ChunkLengthSec == 0 {
		c.Pipeline.ChunkLengthSec = 60
	}
	if c.Pipeline.TempDir == "" {
		c.Pipeline.TempDir = "data/temp"
	}
	if c.Performance.Concurrency == 0 {
		c.Performance.Concurrency = 5
	}
	if c.Performance.MaxConcurrentFiles == 0 {
		c.Performance.MaxConcurrentFiles = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// ValidateWatchPaths checks the directory settings watch mode depends on.
func (c *Config) ValidateWatchPaths() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required for watch mode")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required for watch mode")
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	return nil
}
