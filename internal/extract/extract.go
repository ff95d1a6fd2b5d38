package extract

import (
	"bytes"
	"encoding/json"

	"github.com/hyperifyio/goscrape/internal/pattern"
)

// Result holds the matches of one extraction run: an ordered mapping from
// field name to the list of substrings that field's pattern found. Key
// order follows the pattern set's declared order and survives JSON
// marshalling, so emitted documents are byte-stable across runs.
type Result struct {
	names []string
	lists map[string][]string
}

// Extract scans text with every field of the set, in declared order, and
// returns the collected matches. It is a pure function: same text and set
// always yield the same Result, and empty text yields a Result with every
// field present and an empty match list.
func Extract(text string, set *pattern.Set) Result {
	r := Result{lists: map[string][]string{}}
	if set == nil {
		return r
	}
	fields := set.Fields()
	r.names = make([]string, 0, len(fields))
	for _, f := range fields {
		matches := f.FindAll(text)
		if matches == nil {
			matches = []string{}
		}
		r.names = append(r.names, f.Name)
		r.lists[f.Name] = matches
	}
	return r
}

// Names returns the field names in declared order.
func (r Result) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Matches returns the match list for the named field, in match order.
// Fields with no matches return an empty, non-nil list; unknown names
// return nil.
func (r Result) Matches(name string) []string {
	return r.lists[name]
}

// Total reports the number of matches across all fields.
func (r Result) Total() int {
	n := 0
	for _, list := range r.lists {
		n += len(list)
	}
	return n
}

// MarshalJSON emits the result as a JSON object whose keys appear in
// declared field order. Values are emitted without HTML-safe escaping so
// page text passes through with standard JSON escapes only.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(name); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		list := r.lists[name]
		if list == nil {
			list = []string{}
		}
		if err := enc.Encode(list); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
