package render

import (
	"context"
	"errors"
	"strings"

	"github.com/hyperifyio/goscrape/internal/fetch"
	"github.com/hyperifyio/goscrape/internal/htmltext"
)

// HTML fetches the page over plain HTTP and flattens the markup to text.
// It needs no external binary but never sees JavaScript-rendered content.
type HTML struct {
	Client *fetch.Client
}

func (h *HTML) Render(ctx context.Context, url string) (string, error) {
	if h.Client == nil {
		return "", errors.New("http renderer: no client configured")
	}
	body, contentType, err := h.Client.Get(ctx, url)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(strings.ToLower(contentType), "text/plain") {
		return string(body), nil
	}
	return htmltext.FromHTML(body), nil
}
