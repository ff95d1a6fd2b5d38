package report

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/hyperifyio/goscrape/internal/extract"
	"github.com/hyperifyio/goscrape/internal/pattern"
)

func TestWrite_IndentAndTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	r := extract.Extract("Contact a@b.com", pattern.Default())
	if err := Write(&buf, r); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newline, got %q", out)
	}
	if !strings.Contains(out, "\n  \"emails\": [") {
		t.Fatalf("expected 2-space indented keys, got %q", out)
	}
	if !strings.Contains(out, "\n    \"a@b.com\"\n") {
		t.Fatalf("expected indented list entries, got %q", out)
	}
}

func TestWrite_KeyOrderMatchesSet(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, extract.Extract("", pattern.Default())); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	order := []string{`"emails"`, `"prices"`, `"dates"`, `"phones"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		if idx < 0 {
			t.Fatalf("missing key %s in %q", key, out)
		}
		if idx < last {
			t.Fatalf("key %s out of order in %q", key, out)
		}
		last = idx
	}
}

func TestWrite_EmptyListsNotNull(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, extract.Extract("", pattern.Default())); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.Contains(buf.String(), "null") {
		t.Fatalf("expected [] for empty fields, got %q", buf.String())
	}
	var back map[string][]string
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(back) != 4 {
		t.Fatalf("expected 4 keys, got %d", len(back))
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	r := extract.Extract("a@b.com $9.99 9/9/2029 (555) 123-4567", pattern.Default())
	if err := Write(&buf, r); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var back map[string][]string
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, name := range r.Names() {
		if !reflect.DeepEqual(back[name], r.Matches(name)) {
			t.Fatalf("%s: expected %v, got %v", name, r.Matches(name), back[name])
		}
	}
}

func TestWrite_NoHTMLEscaping(t *testing.T) {
	set, err := pattern.New([]pattern.Field{{Name: "amp", Regex: `&\w+;`}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, extract.Extract("x &amp; y", set)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.Contains(buf.String(), `\u0026`) {
		t.Fatalf("expected literal ampersand, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "&amp;") {
		t.Fatalf("expected &amp; verbatim, got %q", buf.String())
	}
}

func TestMarshal_MatchesWrite(t *testing.T) {
	r := extract.Extract("pay $5 now", pattern.Default())
	var buf bytes.Buffer
	if err := Write(&buf, r); err != nil {
		t.Fatalf("Write: %v", err)
	}
	b, err := Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(b, buf.Bytes()) {
		t.Fatalf("Marshal and Write disagree: %q vs %q", b, buf.Bytes())
	}
}
