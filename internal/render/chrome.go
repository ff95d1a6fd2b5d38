package render

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// Chrome renders pages in headless Chrome and reads the document body's
// innerText, so JavaScript-rendered content is visible. Requires a Chrome
// or Chromium binary on the host; startup is slow compared to the other
// renderers.
type Chrome struct {
	UserAgent string
}

func (c *Chrome) Render(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(c.UserAgent))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var text string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(`document.body ? document.body.innerText : ""`, &text),
	)
	if err != nil {
		return "", fmt.Errorf("chrome render: %w", err)
	}
	return text, nil
}
