package app

import (
	"io"
	"time"

	"github.com/hyperifyio/goscrape/internal/render"
)

// Config holds runtime configuration for one scrape run.
type Config struct {
	// URL is the single page to scrape.
	URL string

	// Renderer picks the render backend: "lynx" (default), "http" or
	// "chrome".
	Renderer string

	// Lynx renderer
	LynxPath  string
	LynxWidth int

	// Timeout bounds the render when > 0. Zero preserves the historical
	// behavior: the run waits as long as the renderer takes.
	Timeout time.Duration

	// UserAgent is sent by the http and chrome renderers.
	UserAgent string

	// PatternsPath optionally replaces the built-in field set with a
	// YAML/JSON pattern file.
	PatternsPath string

	// LLM settings for the optional summary sidecar.
	LLMBaseURL  string
	LLMModel    string
	LLMAPIKey   string
	SummaryPath string

	// Artifacts
	ArtifactsDir string
	ArtifactsTar bool
	PDFPath      string

	Verbose bool

	// Stdout receives the JSON document. Nil means os.Stdout.
	Stdout io.Writer

	// RenderOverride replaces the configured renderer when non-nil. Tests
	// use it to run the pipeline offline.
	RenderOverride render.Renderer
}
