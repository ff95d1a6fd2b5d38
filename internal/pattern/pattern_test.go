package pattern

import (
	"strings"
	"testing"
)

func TestDefaultOrder(t *testing.T) {
	s := Default()
	got := s.Names()
	want := []string{"emails", "prices", "dates", "phones"}
	if len(got) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

// The default expressions are a compatibility surface: loosening or
// tightening any of them changes what downstream consumers see.
func TestDefaultExpressionsUnchanged(t *testing.T) {
	want := map[string]string{
		"emails": `[\w\.-]+@[\w\.-]+\.\w+`,
		"prices": `\$\d+(?:\.\d{2})?`,
		"dates":  `\d{1,2}/\d{1,2}/\d{4}`,
		"phones": `\(\d{3}\)\s*\d{3}-\d{4}`,
	}
	for _, f := range Default().Fields() {
		if f.Regex != want[f.Name] {
			t.Fatalf("field %q: expected %q, got %q", f.Name, want[f.Name], f.Regex)
		}
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		fields  []Field
		wantSub string
	}{
		{"empty set", nil, "empty"},
		{"missing name", []Field{{Regex: `x`}}, "missing name"},
		{"missing regex", []Field{{Name: "a"}}, "missing regex"},
		{"duplicate name", []Field{{Name: "a", Regex: `x`}, {Name: "a", Regex: `y`}}, "duplicate"},
		{"bad regex", []Field{{Name: "broken", Regex: `([`}}, "broken"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.fields); err == nil {
				t.Fatalf("expected error, got nil")
			} else if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("expected error containing %q, got %v", tc.wantSub, err)
			}
		})
	}
}

func TestFindAllMultilineAnchors(t *testing.T) {
	s, err := New([]Field{{Name: "lines", Regex: `^\d+$`}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := s.Fields()[0].FindAll("12\nabc\n34\n56")
	want := []string{"12", "34", "56"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("match %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFindAllKeepsDuplicates(t *testing.T) {
	f := Default().Fields()[0]
	got := f.FindAll("a@b.com then again a@b.com")
	if len(got) != 2 || got[0] != "a@b.com" || got[1] != "a@b.com" {
		t.Fatalf("expected two identical matches, got %v", got)
	}
}

func TestFindAllOnUncompiledField(t *testing.T) {
	var f Field
	if got := f.FindAll("anything"); got != nil {
		t.Fatalf("expected nil from zero-value field, got %v", got)
	}
}
