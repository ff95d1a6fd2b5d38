package app

import (
	"os"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values (flags) take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Renderer == "" {
		cfg.Renderer = os.Getenv("GOSCRAPE_RENDERER")
	}
	if cfg.LynxPath == "" {
		cfg.LynxPath = os.Getenv("GOSCRAPE_LYNX_PATH")
	}
	if cfg.PatternsPath == "" {
		cfg.PatternsPath = os.Getenv("GOSCRAPE_PATTERNS")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("GOSCRAPE_USER_AGENT")
	}

	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
	}

	// Optional durations; malformed values are ignored
	if cfg.Timeout == 0 {
		if s := os.Getenv("GOSCRAPE_TIMEOUT"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.Timeout = d
			}
		}
	}

	// Booleans accept 1/true/yes/on
	if !cfg.Verbose {
		if s := strings.ToLower(strings.TrimSpace(os.Getenv("GOSCRAPE_VERBOSE"))); s != "" {
			if s == "1" || s == "true" || s == "yes" || s == "on" {
				cfg.Verbose = true
			}
		}
	}
}
