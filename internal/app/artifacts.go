package app

import (
	"archive/tar"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hyperifyio/goscrape/internal/extract"
)

// exportArtifactsBundle writes a reproducibility bundle for one scan under
// ArtifactsDir: the rendered page text, a byte-exact copy of the result
// document, a run manifest, the optional summary and a SHA256SUMS index.
// With ArtifactsTar the bundle directory is also packed as a sibling tar.gz.
func (a *App) exportArtifactsBundle(pageText string, result extract.Result, resultJSON []byte, summary string, renderDur time.Duration) error {
	dir := deriveBundleDir(a.cfg)
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create bundle dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "page.txt"), []byte(pageText), 0o644); err != nil {
		return fmt.Errorf("write page text: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "result.json"), resultJSON, 0o644); err != nil {
		return fmt.Errorf("write result copy: %w", err)
	}
	meta := buildManifest(a.cfg.URL, a.rendererName(), pageText, a.set, result, renderDur)
	if err := writeJSON(filepath.Join(dir, "manifest.json"), meta); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	if strings.TrimSpace(summary) != "" {
		if err := os.WriteFile(filepath.Join(dir, "summary.md"), []byte(summary+"\n"), 0o644); err != nil {
			return fmt.Errorf("write summary copy: %w", err)
		}
	}
	if err := writeSHA256SUMS(dir); err != nil {
		return fmt.Errorf("write checksums: %w", err)
	}

	if a.cfg.ArtifactsTar {
		if err := tarGzDirectory(dir, dir+".tar.gz"); err != nil {
			return fmt.Errorf("pack bundle: %w", err)
		}
	}
	return nil
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	// Replace non-alphanumeric with hyphens
	re := regexp.MustCompile(`[^a-z0-9]+`)
	s = re.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "page"
	}
	return s
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func writeSHA256SUMS(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		p := filepath.Join(dir, name)
		sum, err := sha256File(p)
		if err != nil {
			return err
		}
		b.WriteString(sum)
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	return os.WriteFile(filepath.Join(dir, "SHA256SUMS"), []byte(b.String()), 0o644)
}

func sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func tarGzDirectory(srcDir, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	gz := gzip.NewWriter(out)
	defer gz.Close()
	tw := tar.NewWriter(gz)
	defer tw.Close()

	base := filepath.Base(srcDir)
	return filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(filepath.Dir(srcDir), path)
		if err != nil {
			return err
		}
		// Entries stay nested under the bundle directory name
		if !strings.HasPrefix(rel, base+string(os.PathSeparator)) {
			rel = filepath.Join(base, filepath.Base(path))
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = rel
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		if _, err := io.Copy(tw, f); err != nil {
			f.Close()
			return err
		}
		f.Close()
		return nil
	})
}
