package ir

import (
	"fmt"
	"maps"
	"slices"
)

type Node struct {
	Type Type

	// Rule holds the leaf rule string when Type is RuleType.
	Rule string

	// Fields and Values are parallel when Type is ObjectType; only Values
	// is used when Type is ArrayType.
	Fields []string
	Values []*Node
}

func FromRule(rule string) *Node {
	return &Node{
		Type: RuleType,
		Rule: rule,
	}
}

func FromSlice(values []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: values,
	}
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(m)),
		Values: make([]*Node, 0, len(m)),
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

// FromAny builds a Node from a decoded YAML/JSON value: strings become
// rules, slices become arrays, string-keyed maps become objects. Any other
// leaf is not a valid mapping specification.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case string:
		return FromRule(x), nil
	case []any:
		values := make([]*Node, len(x))
		for i := range x {
			n, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			values[i] = n
		}
		return FromSlice(values), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for key, val := range x {
			n, err := FromAny(val)
			if err != nil {
				return nil, err
			}
			m[key] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %v (%T)", ErrBadSpec, v, v)
	}
}

// ToAny is the inverse of FromAny, up to object field order.
func (y *Node) ToAny() any {
	switch y.Type {
	case RuleType:
		return y.Rule
	case ArrayType:
		res := make([]any, len(y.Values))
		for i := range y.Values {
			res[i] = y.Values[i].ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i]] = y.Values[i].ToAny()
		}
		return res
	default:
		panic("type")
	}
}

// Get returns the value under field, or nil if y is not an object or has no
// such field.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type: y.Type,
		Rule: y.Rule,
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i := range y.Values {
			res.Values[i] = y.Values[i].Clone()
		}
	}
	return res
}
