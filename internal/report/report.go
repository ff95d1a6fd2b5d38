package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperifyio/goscrape/internal/extract"
)

// Write serializes the result to w as a JSON object with 2-space
// indentation and a trailing newline. Keys keep the pattern set's declared
// order and values carry standard JSON escapes only; HTML-safe escaping is
// off so page text round-trips unaltered.
func Write(w io.Writer, result extract.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// Marshal returns exactly the bytes Write would emit, trailing newline
// included. Artifact writers use it so saved copies match stdout.
func Marshal(result extract.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
