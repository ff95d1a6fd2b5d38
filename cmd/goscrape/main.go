package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goscrape/internal/app"
	"github.com/hyperifyio/goscrape/internal/render"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	os.Exit(run(os.Args[1:], os.Stdout))
}

// run parses args, assembles the configuration and executes one scrape.
// It returns the process exit code: 0 for a completed scan (even when the
// page could not be fetched), 1 for usage and configuration errors or when
// the result document cannot be written.
func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("goscrape", flag.ContinueOnError)
	fs.SetOutput(stdout)

	var (
		renderer     string
		lynxPath     string
		lynxWidth    int
		timeout      time.Duration
		userAgent    string
		patterns     string
		configPath   string
		envFiles     string
		llmBaseURL   string
		llmModel     string
		llmKey       string
		summaryPath  string
		artifactsDir string
		artifactsTar bool
		pdfPath      string
		verbose      bool
		showVersion  bool
	)

	fs.StringVar(&renderer, "renderer", "", "Render backend: lynx, http or chrome (default lynx)")
	fs.StringVar(&lynxPath, "lynx.path", "", "Path to the lynx binary (default lynx)")
	fs.IntVar(&lynxWidth, "lynx.width", render.DefaultLynxWidth, "Dump width passed to lynx")
	fs.DurationVar(&timeout, "timeout", 0, "Overall render timeout (e.g. 30s); 0 waits indefinitely")
	fs.StringVar(&userAgent, "ua", "", "Custom User-Agent for the http and chrome renderers (default goscrape/<version>)")
	fs.StringVar(&patterns, "patterns", "", "Path to a YAML/JSON pattern file replacing the built-in set")
	fs.StringVar(&configPath, "config", "", "Path to a YAML/JSON config file")
	fs.StringVar(&envFiles, "env-file", "", "Comma-separated dotenv files to load before reading the environment")
	fs.StringVar(&llmBaseURL, "llm.base", "", "OpenAI-compatible base URL for the summary sidecar")
	fs.StringVar(&llmModel, "llm.model", "", "Model name for the summary sidecar")
	fs.StringVar(&llmKey, "llm.key", "", "API key for the OpenAI-compatible server")
	fs.StringVar(&summaryPath, "summary", "", "Write an LLM summary of the result to this path")
	fs.StringVar(&artifactsDir, "artifacts", "", "Write a reproducibility bundle under this directory")
	fs.BoolVar(&artifactsTar, "artifacts.tar", false, "Also pack the artifacts bundle as a tar.gz")
	fs.StringVar(&pdfPath, "pdf", "", "Write the result as a PDF to this path")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: goscrape [flags] <url>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if showVersion {
		fmt.Fprintf(stdout, "goscrape %s (commit %s, built %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return 0
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}

	if err := app.LoadEnvFiles(splitList(envFiles)...); err != nil {
		log.Error().Err(err).Msg("load env files failed")
		return 1
	}

	cfg := app.Config{
		URL:          fs.Arg(0),
		Renderer:     renderer,
		LynxPath:     lynxPath,
		LynxWidth:    lynxWidth,
		Timeout:      timeout,
		UserAgent:    userAgent,
		PatternsPath: patterns,
		LLMBaseURL:   llmBaseURL,
		LLMModel:     llmModel,
		LLMAPIKey:    llmKey,
		SummaryPath:  summaryPath,
		ArtifactsDir: artifactsDir,
		ArtifactsTar: artifactsTar,
		PDFPath:      pdfPath,
		Verbose:      verbose,
		Stdout:       stdout,
	}

	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file failed")
			return 1
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 1
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := scrape(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		return 1
	}
	return 0
}

func scrape(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
