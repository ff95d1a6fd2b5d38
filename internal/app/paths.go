package app

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"path/filepath"
	"strings"
)

// deriveBundleDir returns a stable directory path under the artifacts root
// for the configured URL. The name uses a slugified host plus a short URL
// hash so repeat runs land in the same place while distinct URLs never
// collide.
func deriveBundleDir(cfg Config) string {
	root := strings.TrimSpace(cfg.ArtifactsDir)
	if root == "" {
		return ""
	}
	raw := strings.TrimSpace(cfg.URL)
	host := ""
	if u, err := url.Parse(raw); err == nil {
		host = u.Hostname()
	}
	if host == "" {
		host = "page"
	}
	h := sha256.Sum256([]byte(raw))
	short := hex.EncodeToString(h[:])
	if len(short) > 12 {
		short = short[:12]
	}
	return filepath.Join(root, slugify(host)+"-"+short)
}
