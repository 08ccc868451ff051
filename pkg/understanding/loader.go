package understanding

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTaxonomy reads a YAML taxonomy file and overlays it on DefaultTaxonomy.
// Tables missing from the file keep their built-in keywords.
func LoadTaxonomy(path string) (Taxonomy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	return ParseTaxonomy(raw)
}

func ParseTaxonomy(raw []byte) (Taxonomy, error) {
	var fromFile Taxonomy
	if err := yaml.Unmarshal(raw, &fromFile); err != nil {
		return Taxonomy{}, fmt.Errorf("parse taxonomy: %w", err)
	}

	t := DefaultTaxonomy().merge(fromFile)
	if err := t.Validate(); err != nil {
		return Taxonomy{}, err
	}
	return t, nil
}

// NewExtractorFromFile builds an extractor from path, or from the built-in
// tables when path is empty.
func NewExtractorFromFile(path string) (*Extractor, error) {
	if path == "" {
		return Default(), nil
	}
	t, err := LoadTaxonomy(path)
	if err != nil {
		return nil, err
	}
	return NewExtractor(t)
}
