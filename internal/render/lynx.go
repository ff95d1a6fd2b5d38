package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultLynxWidth is wide enough that line wrapping cannot split a match
// (an email or a price broken across two dump lines would never be found).
const DefaultLynxWidth = 1000

// Lynx renders pages by shelling out to a text-mode browser in dump mode:
//
//	<tool> -dump -nolist -notitle -width=<width> <url>
//
// -dump writes the rendered page to stdout, -nolist suppresses the trailing
// hyperlink reference list, -notitle drops the title banner. Any tool that
// accepts the same flags can substitute via Tool.
type Lynx struct {
	// Tool is the binary to invoke. Empty means "lynx".
	Tool string
	// Width is the dump column width. Zero means DefaultLynxWidth.
	Width int
}

// Render spawns one subprocess and returns its captured stdout unmodified.
// Cancelling the context kills the subprocess. On failure the error carries
// the tool's stderr, which is where text browsers explain themselves.
func (l *Lynx) Render(ctx context.Context, url string) (string, error) {
	tool := l.Tool
	if tool == "" {
		tool = "lynx"
	}
	width := l.Width
	if width <= 0 {
		width = DefaultLynxWidth
	}

	cmd := exec.CommandContext(ctx, tool, "-dump", "-nolist", "-notitle", fmt.Sprintf("-width=%d", width), url)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%s: %w", tool, ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %v: %s", tool, err, msg)
		}
		return "", fmt.Errorf("%s: %w", tool, err)
	}
	return out.String(), nil
}
