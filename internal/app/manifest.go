package app

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hyperifyio/goscrape/internal/extract"
	"github.com/hyperifyio/goscrape/internal/pattern"
)

// manifestField is a compact record of a single pattern applied to the page.
type manifestField struct {
	Name    string `json:"name"`
	Regex   string `json:"regex"`
	Matches int    `json:"matches"`
}

// manifestMeta captures high-level run details that aid reproducibility.
type manifestMeta struct {
	URL          string          `json:"url"`
	Renderer     string          `json:"renderer"`
	Version      string          `json:"version"`
	PageChars    int             `json:"page_chars"`
	PageSHA256   string          `json:"page_sha256"`
	RenderMillis int64           `json:"render_millis"`
	TotalMatches int             `json:"total_matches"`
	Fields       []manifestField `json:"fields"`
	GeneratedAt  time.Time       `json:"generated_at"`
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of the given text.
func computeSHA256Hex(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// buildManifest constructs the manifest for one completed scan. Field order
// follows the pattern set so the manifest reads like the result document.
func buildManifest(url, renderer, pageText string, set *pattern.Set, result extract.Result, renderDur time.Duration) manifestMeta {
	fields := make([]manifestField, 0, set.Len())
	for _, f := range set.Fields() {
		fields = append(fields, manifestField{
			Name:    f.Name,
			Regex:   f.Regex,
			Matches: len(result.Matches(f.Name)),
		})
	}
	return manifestMeta{
		URL:          url,
		Renderer:     renderer,
		Version:      BuildVersion,
		PageChars:    len(pageText),
		PageSHA256:   computeSHA256Hex(pageText),
		RenderMillis: renderDur.Milliseconds(),
		TotalMatches: result.Total(),
		Fields:       fields,
		GeneratedAt:  time.Now().UTC(),
	}
}
