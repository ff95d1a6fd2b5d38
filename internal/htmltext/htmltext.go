package htmltext

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// FromHTML renders HTML into the plain text a text-mode browser would show:
// every visible text node in document order, block elements separated by
// line breaks, scripts and styles dropped. Unlike a readability extractor
// it keeps navigation, header and footer text; the page is scanned for
// field matches, so nothing visible may be discarded.
func FromHTML(input []byte) string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return ""
	}
	root := findFirst(node, "body")
	if root == nil {
		root = node
	}
	var b strings.Builder
	collectText(&b, root, false)
	return normalizeWhitespace(b.String())
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func collectText(b *strings.Builder, n *html.Node, inPre bool) {
	if n.Type == html.ElementNode {
		name := strings.ToLower(n.Data)
		switch name {
		case "script", "style", "noscript", "template", "iframe", "head":
			return
		case "pre", "code":
			inPre = true
		case "br", "hr":
			b.WriteString("\n")
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr",
			"div", "section", "article", "header", "footer", "nav",
			"ul", "ol", "table", "blockquote":
			b.WriteString("\n")
		case "td", "th":
			// Cells on one row stay on one line, separated by spaces.
			b.WriteString(" ")
		}
	}

	if n.Type == html.TextNode {
		data := n.Data
		if !inPre {
			data = strings.ReplaceAll(data, "\t", " ")
			data = strings.ReplaceAll(data, "\r", " ")
		}
		b.WriteString(data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c, inPre)
	}

	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "div", "section",
			"article", "blockquote":
			b.WriteString("\n\n")
		case "li", "tr":
			b.WriteString("\n")
		case "pre", "code":
			b.WriteString("\n")
		}
	}
}

func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			// Keep at most one consecutive blank
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, collapseSpaces(trimmed))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	return strings.Join(out, "\n")
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
