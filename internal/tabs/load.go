package tabs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a tab map from a YAML file. See Parse for the format.
func Load(path string) (*TabMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tab file: %w", err)
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse reads a YAML mapping of main-tab key to a list of sub-tab labels:
//
//	tab1: [tab1.1, tab1.2]
//	tab2:
//	  - tab2.1
//	  - tab2.2
//
// Main tabs keep the order they appear in the document.
func Parse(r io.Reader) (*TabMap, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyMap
		}
		return nil, fmt.Errorf("decode tab file: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyMap
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: tab file must be a mapping of main tab to sub-tabs", root.Line)
	}

	groups := make([]Group, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		var subs []string
		if v.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: %q must map to a list of sub-tabs", v.Line, k.Value)
		}
		if err := v.Decode(&subs); err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", v.Line, k.Value, err)
		}
		groups = append(groups, Group{Key: k.Value, SubTabs: subs})
	}
	return New(groups...)
}
