package render

import "context"

// Renderer turns a URL into the plain-text rendering of its page. The text
// is whatever the underlying tool shows a reader: markup stripped, scripts
// invisible, layout flattened to lines. Implementations report failures as
// errors and leave the decision of what a failed render means to the
// caller.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// Static returns canned text or a canned error regardless of URL. It is
// the offline stand-in used to exercise the pipeline without a network or
// an external binary.
type Static struct {
	Text string
	Err  error
}

func (s Static) Render(ctx context.Context, url string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Text, nil
}
