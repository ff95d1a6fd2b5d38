package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/goscrape/internal/annotate"
	"github.com/hyperifyio/goscrape/internal/extract"
	"github.com/hyperifyio/goscrape/internal/fetch"
	"github.com/hyperifyio/goscrape/internal/llm"
	"github.com/hyperifyio/goscrape/internal/pattern"
	"github.com/hyperifyio/goscrape/internal/render"
	"github.com/hyperifyio/goscrape/internal/report"
)

type App struct {
	cfg       Config
	set       *pattern.Set
	renderer  render.Renderer
	annotator *annotate.Annotator
	out       io.Writer
}

func New(ctx context.Context, cfg Config) (*App, error) {
	set, err := loadPatternSet(cfg)
	if err != nil {
		return nil, err
	}

	r := cfg.RenderOverride
	if r == nil {
		r, err = buildRenderer(cfg)
		if err != nil {
			return nil, err
		}
	}

	a := &App{cfg: cfg, set: set, renderer: r, out: cfg.Stdout}
	if a.out == nil {
		a.out = os.Stdout
	}

	if cfg.SummaryPath != "" && cfg.LLMModel != "" {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		if cfg.LLMBaseURL != "" {
			transportCfg.BaseURL = cfg.LLMBaseURL
		}
		transportCfg.HTTPClient = newLLMHTTPClient()
		a.annotator = &annotate.Annotator{
			Client: &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(transportCfg)},
			Model:  cfg.LLMModel,
		}
	}
	return a, nil
}

func loadPatternSet(cfg Config) (*pattern.Set, error) {
	if cfg.PatternsPath == "" {
		return pattern.Default(), nil
	}
	set, err := pattern.LoadFile(cfg.PatternsPath)
	if err != nil {
		return nil, fmt.Errorf("load patterns: %w", err)
	}
	return set, nil
}

func buildRenderer(cfg Config) (render.Renderer, error) {
	switch cfg.Renderer {
	case "", "lynx":
		return &render.Lynx{Tool: cfg.LynxPath, Width: cfg.LynxWidth}, nil
	case "http":
		return &render.HTML{Client: &fetch.Client{UserAgent: userAgent(cfg)}}, nil
	case "chrome":
		return &render.Chrome{UserAgent: userAgent(cfg)}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}
}

func userAgent(cfg Config) string {
	if cfg.UserAgent != "" {
		return cfg.UserAgent
	}
	return "goscrape/" + BuildVersion + " (+https://github.com/hyperifyio/goscrape)"
}

func (a *App) Close() {
	// nothing to release yet
}

// Run renders the configured URL, scans the page text against the pattern
// set and writes the JSON result document to the configured output. A failed
// render degrades to an empty page so the document is always complete.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()

	renderCtx := ctx
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	text, err := a.renderer.Render(renderCtx, a.cfg.URL)
	if err != nil {
		log.Warn().Err(err).Str("url", a.cfg.URL).Msg("render failed; continuing with empty page text")
		text = ""
	}
	renderDur := time.Since(start)
	log.Debug().Int("chars", len(text)).Dur("elapsed", renderDur).Msg("page rendered")

	result := extract.Extract(text, a.set)
	log.Debug().Int("matches", result.Total()).Msg("patterns scanned")

	resultJSON, err := report.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if _, err := a.out.Write(resultJSON); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	// Sidecar outputs come after the document on stdout. Their failures are
	// reported but never change the exit status of a completed scan.
	var summary string
	if a.annotator != nil {
		s, aerr := a.annotator.Summarize(ctx, a.cfg.URL, result, text)
		if aerr != nil {
			log.Warn().Err(aerr).Msg("summary skipped")
		} else {
			summary = s
			if werr := os.WriteFile(a.cfg.SummaryPath, []byte(summary+"\n"), 0o644); werr != nil {
				log.Warn().Err(werr).Str("path", a.cfg.SummaryPath).Msg("write summary failed")
			}
		}
	}

	if a.cfg.PDFPath != "" {
		if perr := writeResultPDF(a.cfg.URL, result, a.cfg.PDFPath); perr != nil {
			log.Warn().Err(perr).Str("path", a.cfg.PDFPath).Msg("write pdf failed")
		}
	}

	if a.cfg.ArtifactsDir != "" {
		if berr := a.exportArtifactsBundle(text, result, resultJSON, summary, renderDur); berr != nil {
			log.Warn().Err(berr).Msg("artifacts bundle failed")
		}
	}
	return nil
}

func (a *App) rendererName() string {
	if a.cfg.RenderOverride != nil {
		return "custom"
	}
	if a.cfg.Renderer == "" {
		return "lynx"
	}
	return a.cfg.Renderer
}
