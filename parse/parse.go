// Package parse turns YAML or JSON bytes into morph values: mapping
// documents become ir.Node trees, input documents become plain decoded
// values. YAML is a superset of JSON, so both accept either syntax.
package parse

import (
	"fmt"

	"github.com/morph-format/go-morph/ir"

	"github.com/goccy/go-yaml"
)

// Parse parses a mapping specification or transformation document.
func Parse(data []byte) (*ir.Node, error) {
	v, err := Document(data)
	if err != nil {
		return nil, err
	}
	n, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return n, nil
}

// Document parses an input document into the evaluation representation:
// map[string]any objects, []any arrays, and scalar leaves.
func Document(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return v, nil
}
