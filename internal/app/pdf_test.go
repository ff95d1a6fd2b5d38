package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/goscrape/internal/extract"
	"github.com/hyperifyio/goscrape/internal/pattern"
	"github.com/hyperifyio/goscrape/internal/render"
)

func TestWriteResultPDF(t *testing.T) {
	result := extract.Extract("a@b.com costs $5.00", pattern.Default())
	path := filepath.Join(t.TempDir(), "result.pdf")
	if err := writeResultPDF("https://example.com/", result, path); err != nil {
		t.Fatalf("writeResultPDF error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !strings.HasPrefix(string(b), "%PDF-") {
		t.Fatalf("not a PDF file: %q", string(b[:min(len(b), 8)]))
	}
	if len(b) < 500 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(b))
	}
}

func TestRun_PDFSidecar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	var buf bytes.Buffer
	cfg := Config{
		URL:            "https://example.com/",
		RenderOverride: &render.Static{Text: samplePage},
		Stdout:         &buf,
		PDFPath:        path,
	}
	a, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer a.Close()
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("pdf sidecar not written: %v", err)
	}
	if !strings.HasPrefix(string(b), "%PDF-") {
		t.Fatalf("pdf sidecar has wrong header")
	}
}
