// Package compile turns a transformation document (ir.Node) into an
// immutable Transformation: a fragment tree for the top-level output shape
// plus a table of named nested mappings. Validation is eager and total: a
// Transformation that compiles references only known converters and known
// nested mappings, so evaluation never re-checks names.
package compile

import (
	"fmt"
	"strings"

	"github.com/morph-format/go-morph/convert"
	"github.com/morph-format/go-morph/debug"
	"github.com/morph-format/go-morph/ir"
)

// Tree is the compiled form of a mapping specification: the same recursive
// shape with every rule string replaced by a Fragment.
type Tree struct {
	Type ir.Type

	// Frag is set when Type is RuleType.
	Frag *Fragment

	// Fields and Values are parallel when Type is ObjectType; only Values
	// is used when Type is ArrayType.
	Fields []string
	Values []*Tree
}

// Transformation is the compiled artifact. It is immutable after Compile
// and safe for concurrent evaluation as long as Registry is not mutated
// concurrently.
//
// Registry is the live registry of the engine that compiled the
// transformation; a converter registered after compilation under a name the
// transformation references is picked up on the next evaluation.
type Transformation struct {
	Properties *Tree
	Nested     map[string]*Tree
	Registry   *convert.Registry
}

// Compile compiles a transformation document against reg. The document
// must be an object with a required "properties" member and an optional
// "nested" object whose keys begin with '$'. All failures wrap
// ErrMalformedConfig.
//
// Nested mappings may reference each other and themselves; no cycle check
// is performed. A self-referential nested mapping recurses as deep as the
// input document nests (or, through $root, without bound).
func Compile(doc *ir.Node, reg *convert.Registry) (*Transformation, error) {
	if doc == nil || doc.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: document must be an object", ErrMalformedConfig)
	}
	props := ir.Get(doc, "properties")
	if props == nil {
		return nil, fmt.Errorf("%w: document has no properties", ErrMalformedConfig)
	}
	c := &compiler{
		reg:    reg,
		nested: map[string]*ir.Node{},
	}
	if nested := ir.Get(doc, "nested"); nested != nil {
		if nested.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: nested must be an object, got %s", ErrMalformedConfig, nested.Type)
		}
		for i, name := range nested.Fields {
			if !strings.HasPrefix(name, NestedPrefix) {
				return nil, fmt.Errorf("%w: nested mapping %q must begin with %q", ErrMalformedConfig, name, NestedPrefix)
			}
			c.nested[name] = nested.Values[i]
		}
	}

	// All nested names are known before any tree compiles, so forward,
	// mutual, and self references resolve without ordering among them.
	res := &Transformation{
		Nested:   make(map[string]*Tree, len(c.nested)),
		Registry: reg,
	}
	for name, spec := range c.nested {
		tree, err := c.compile(spec)
		if err != nil {
			return nil, fmt.Errorf("nested %s: %w", name, err)
		}
		res.Nested[name] = tree
	}
	tree, err := c.compile(props)
	if err != nil {
		return nil, err
	}
	res.Properties = tree
	return res, nil
}

type compiler struct {
	reg    *convert.Registry
	nested map[string]*ir.Node
}

func (c *compiler) compile(spec *ir.Node) (*Tree, error) {
	switch spec.Type {
	case ir.RuleType:
		frag, err := c.fragment(spec.Rule)
		if err != nil {
			return nil, err
		}
		return &Tree{Type: ir.RuleType, Frag: frag}, nil

	case ir.ArrayType:
		res := &Tree{
			Type:   ir.ArrayType,
			Values: make([]*Tree, len(spec.Values)),
		}
		for i := range spec.Values {
			sub, err := c.compile(spec.Values[i])
			if err != nil {
				return nil, err
			}
			res.Values[i] = sub
		}
		return res, nil

	case ir.ObjectType:
		res := &Tree{
			Type:   ir.ObjectType,
			Fields: spec.Fields,
			Values: make([]*Tree, len(spec.Values)),
		}
		for i := range spec.Values {
			sub, err := c.compile(spec.Values[i])
			if err != nil {
				return nil, err
			}
			res.Values[i] = sub
		}
		return res, nil
	default:
		panic("type")
	}
}

func (c *compiler) fragment(rule string) (*Fragment, error) {
	frag, err := parseRule(rule)
	if err != nil {
		return nil, err
	}
	if debug.Compile() {
		debug.Logf("compiled rule %q to %s\n", rule, frag)
	}
	if frag.IsNested() {
		if _, present := c.nested[frag.Datatype]; !present {
			return nil, fmt.Errorf("%w: rule %q references unknown nested mapping %q",
				ErrMalformedConfig, rule, frag.Datatype)
		}
		return frag, nil
	}
	if !c.reg.Has(frag.Datatype) {
		return nil, fmt.Errorf("%w: rule %q references unknown converter %q",
			ErrMalformedConfig, rule, frag.Datatype)
	}
	return frag, nil
}
