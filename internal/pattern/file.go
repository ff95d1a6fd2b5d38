package pattern

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// File is the on-disk schema for a custom field set. Entries keep their
// file order, which becomes the set's declared order.
type File struct {
	Patterns []Field `yaml:"patterns" json:"patterns"`
}

// LoadFile reads a YAML or JSON pattern file and compiles it into a Set.
// The extension picks the parser; unknown extensions try YAML then JSON.
func LoadFile(path string) (*Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern file: %w", err)
	}
	var pf File
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &pf); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &pf); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &pf); err != nil {
			if jerr := json.Unmarshal(b, &pf); jerr != nil {
				return nil, fmt.Errorf("parse pattern file: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	s, err := New(pf.Patterns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
