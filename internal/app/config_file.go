package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/goscrape/internal/render"
)

// FileConfig represents the single-file configuration schema.
// Nested sections improve readability and map naturally to flags/env.
type FileConfig struct {
	Renderer string `yaml:"renderer" json:"renderer"`

	Lynx struct {
		Path  string `yaml:"path" json:"path"`
		Width int    `yaml:"width" json:"width"`
	} `yaml:"lynx" json:"lynx"`

	// Timeout is a Go duration string such as "30s" or "2m".
	Timeout string `yaml:"timeout" json:"timeout"`

	UserAgent string `yaml:"ua" json:"ua"`
	Patterns  string `yaml:"patterns" json:"patterns"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Summary string `yaml:"summary" json:"summary"`

	Artifacts struct {
		Dir string `yaml:"dir" json:"dir"`
		Tar bool   `yaml:"tar" json:"tar"`
	} `yaml:"artifacts" json:"artifacts"`

	PDF string `yaml:"pdf" json:"pdf"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their flag defaults. Flags should already
// have been parsed; this lets file config supply defaults while preserving
// explicit flags and environment values.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}

	if cfg.Renderer == "" && fc.Renderer != "" {
		cfg.Renderer = fc.Renderer
	}
	if cfg.LynxPath == "" && fc.Lynx.Path != "" {
		cfg.LynxPath = fc.Lynx.Path
	}
	if (cfg.LynxWidth == 0 || cfg.LynxWidth == render.DefaultLynxWidth) && fc.Lynx.Width > 0 {
		cfg.LynxWidth = fc.Lynx.Width
	}
	if cfg.Timeout == 0 && fc.Timeout != "" {
		if d, err := time.ParseDuration(fc.Timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if cfg.UserAgent == "" && fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if cfg.PatternsPath == "" && fc.Patterns != "" {
		cfg.PatternsPath = fc.Patterns
	}

	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.SummaryPath == "" && fc.Summary != "" {
		cfg.SummaryPath = fc.Summary
	}

	if cfg.ArtifactsDir == "" && fc.Artifacts.Dir != "" {
		cfg.ArtifactsDir = fc.Artifacts.Dir
	}
	if !cfg.ArtifactsTar && fc.Artifacts.Tar {
		cfg.ArtifactsTar = true
	}
	if cfg.PDFPath == "" && fc.PDF != "" {
		cfg.PDFPath = fc.PDF
	}

	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if trim(cfg.URL) == "" {
		return errors.New("config: url is required")
	}
	switch cfg.Renderer {
	case "", "lynx", "http", "chrome":
	default:
		return fmt.Errorf("config: unknown renderer %q (want lynx, http or chrome)", cfg.Renderer)
	}
	if cfg.LynxWidth < 0 {
		return errors.New("config: negative lynx width is not allowed")
	}
	if cfg.Timeout < 0 {
		return errors.New("config: negative timeout is not allowed")
	}
	if cfg.SummaryPath != "" && trim(cfg.LLMModel) == "" {
		return errors.New("config: summary requires llm.model (or set LLM_MODEL)")
	}
	return nil
}

func trim(s string) string {
	i := 0
	j := len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t' || s[j-1] == '\n' || s[j-1] == '\r') {
		j--
	}
	return s[i:j]
}
