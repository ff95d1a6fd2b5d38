package pattern

import (
	"fmt"
	"regexp"
)

// Field pairs a name with the regular expression extracted under that name.
// The expression is compiled once, with multiline mode so ^ and $ match at
// line boundaries rather than only at the ends of the whole text.
type Field struct {
	Name  string `yaml:"name" json:"name"`
	Regex string `yaml:"regex" json:"regex"`

	compiled *regexp.Regexp
}

// FindAll returns every non-overlapping match of the field's expression in
// text, leftmost first, top to bottom. Duplicates are retained. The result
// is nil when nothing matches.
func (f Field) FindAll(text string) []string {
	if f.compiled == nil {
		return nil
	}
	return f.compiled.FindAllString(text, -1)
}

// Set is an ordered collection of named fields. Order is significant: it
// fixes the key order of extraction results and of the emitted JSON.
type Set struct {
	fields []Field
}

// New compiles the given fields into a Set, preserving their order.
// It fails when the set is empty, a name is blank or duplicated, or an
// expression does not compile; the error names the offending field.
func New(fields []Field) (*Set, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("pattern set is empty")
	}
	seen := make(map[string]struct{}, len(fields))
	out := make([]Field, 0, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("pattern %d: missing name", i)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("pattern %q: duplicate name", f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.Regex == "" {
			return nil, fmt.Errorf("pattern %q: missing regex", f.Name)
		}
		re, err := regexp.Compile("(?m)" + f.Regex)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: compile regex: %w", f.Name, err)
		}
		f.compiled = re
		out = append(out, f)
	}
	return &Set{fields: out}, nil
}

// Default returns the built-in field set: emails, prices, dates and phone
// numbers, in that order. The expressions are deliberately permissive
// ("13/45/9999" counts as a date) and must stay that way; consumers depend
// on the loose matching.
func Default() *Set {
	s, err := New([]Field{
		{Name: "emails", Regex: `[\w\.-]+@[\w\.-]+\.\w+`},
		{Name: "prices", Regex: `\$\d+(?:\.\d{2})?`},
		{Name: "dates", Regex: `\d{1,2}/\d{1,2}/\d{4}`},
		{Name: "phones", Regex: `\(\d{3}\)\s*\d{3}-\d{4}`},
	})
	if err != nil {
		// The built-in expressions are constants; a compile failure here is
		// a programming error.
		panic(err)
	}
	return s
}

// Len reports the number of fields in the set.
func (s *Set) Len() int { return len(s.fields) }

// Fields returns the fields in declared order. The slice is a copy; the
// set itself is read-only after construction.
func (s *Set) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Names returns the field names in declared order.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, f.Name)
	}
	return out
}
