// Package models defines data structures for configuration and analysis results.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor CLI flags set a value.
const (
	DefaultExtension = ".md"
	DefaultTopK      = 25
	DefaultBottomK   = 5
)

// AnalyzeConfig holds runtime configuration for an analysis run.
// Values come from an optional YAML file merged with CLI flags; flags win.
type AnalyzeConfig struct {
	CorpusDir    string   `yaml:"corpus_dir"`
	Extension    string   `yaml:"extension"`
	CustomWords  []string `yaml:"custom_words"`
	TopK         int      `yaml:"top"`
	BottomK      int      `yaml:"bottom"`
	Language     string   `yaml:"language"` // ISO 639-1 code; empty disables the filter
	DatabasePath string   `yaml:"database_path"`
}

// LoadConfig reads an AnalyzeConfig from a YAML file.
func LoadConfig(path string) (*AnalyzeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &AnalyzeConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	config.ApplyDefaults()
	return config, nil
}

// ApplyDefaults fills in zero-valued fields with package defaults.
func (c *AnalyzeConfig) ApplyDefaults() {
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.TopK == 0 {
		c.TopK = DefaultTopK
	}
	if c.BottomK == 0 {
		c.BottomK = DefaultBottomK
	}
}
