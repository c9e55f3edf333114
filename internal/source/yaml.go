package source

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rshade/jable/internal/table"
)

const yamlNullTag = "!!null"

// FromYAML decodes a YAML sequence of flat mappings. Scalars keep their
// source text; null becomes NullValue. An empty document yields no records.
func FromYAML(r io.Reader) ([]table.Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, ErrNotList
	}

	records := make([]table.Record, 0, len(root.Content))
	for i, item := range root.Content {
		rec, err := yamlRecord(item)
		if err != nil {
			return nil, fmt.Errorf("record %d (line %d): %w", i, item.Line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func yamlRecord(n *yaml.Node) (table.Record, error) {
	if n.Kind != yaml.MappingNode {
		return table.Record{}, ErrNotObject
	}

	rec := table.NewRecord()
	// Mapping content alternates key and value nodes.
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return table.Record{}, fmt.Errorf("%w: non-scalar key", ErrUnsupportedValue)
		}
		cell, err := yamlCell(value)
		if err != nil {
			return table.Record{}, fmt.Errorf("column %q: %w", key.Value, err)
		}
		if err = setUnique(&rec, key.Value, cell); err != nil {
			return table.Record{}, err
		}
	}
	return rec, nil
}

func yamlCell(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w: nested value at line %d", ErrUnsupportedValue, n.Line)
	}
	if n.Tag == yamlNullTag {
		return NullValue, nil
	}
	return n.Value, nil
}
