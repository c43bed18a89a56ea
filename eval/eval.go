// Package eval applies a compiled Transformation to an input document. The
// walk is total over the input: missing or null source data degrades to
// null (scalar fragments) or an empty list (array fragments) and never
// errors. Converter failures are the one exception; they abort the
// evaluation and reach the caller unmodified.
package eval

import (
	"github.com/morph-format/go-morph/compile"
	"github.com/morph-format/go-morph/debug"
	"github.com/morph-format/go-morph/ir"
)

// Evaluate evaluates t against input, producing an output document whose
// shape mirrors t.Properties. input is expected in decoded-JSON shape:
// map[string]any objects, []any arrays, scalar leaves.
func Evaluate(input any, t *compile.Transformation) (any, error) {
	c := Context{
		Scope: input,
		Root:  input,
	}
	return c.tree(t.Properties, t)
}

func (c Context) tree(node *compile.Tree, t *compile.Transformation) (any, error) {
	switch node.Type {
	case ir.RuleType:
		return c.fragment(node.Frag, t)

	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i := range node.Values {
			v, err := c.tree(node.Values[i], t)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil

	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			v, err := c.tree(node.Values[i], t)
			if err != nil {
				return nil, err
			}
			res[node.Fields[i]] = v
		}
		return res, nil
	default:
		panic("type")
	}
}

func (c Context) fragment(frag *compile.Fragment, t *compile.Transformation) (any, error) {
	raw, ok := c.lookup(frag.Path)
	if debug.Eval() {
		debug.Logf("fragment %s: raw %v (present %v)\n", frag, raw, ok)
	}
	if !ok || raw == nil {
		if frag.IsArray {
			return []any{}, nil
		}
		return nil, nil
	}
	return c.resolve(raw, frag.Datatype, frag.IsArray, t)
}

// resolve converts a present raw value. Array fragments map element-wise
// and silently yield an empty list for non-list raw values; nested
// datatypes re-enter the tree walk with a shifted scope; everything else
// is a converter call.
func (c Context) resolve(value any, datatype string, isArray bool, t *compile.Transformation) (any, error) {
	if isArray {
		items, ok := value.([]any)
		if !ok {
			return []any{}, nil
		}
		res := make([]any, len(items))
		for i := range items {
			v, err := c.resolve(items[i], datatype, false, t)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	}
	if debug.Resolve() {
		debug.Logf("resolve %v with %s\n", value, datatype)
	}
	if nested, ok := t.Nested[datatype]; ok {
		sub := Context{
			Scope:  value,
			Parent: c.Scope,
			Root:   c.Root,
		}
		return sub.tree(nested, t)
	}
	fn, ok := t.Registry.Get(datatype)
	if !ok {
		// Unreachable for a compiled transformation unless the registry
		// was mutated after compile time; degrade to no value.
		return nil, nil
	}
	return fn(value)
}
