// Package morph is a declarative, configuration-driven document
// transformation engine. A mapping document describes how output fields
// derive from input fields:
//
//	properties:
//	  name: user.first:upper
//	  home: address:$addr
//	nested:
//	  $addr:
//	    city: c:upper
//
// Compile turns the mapping into a reusable Transformation; Evaluate
// applies it to any input document, producing an output with the same
// recursive shape as the properties section. Rule datatypes name
// converters registered on the engine, or, with a '$' prefix, nested
// mappings evaluated against the extracted value. Within a nested mapping,
// the reserved path segments $root and $parent reach the top-level input
// and the enclosing scope.
package morph

import (
	"github.com/morph-format/go-morph/compile"
	"github.com/morph-format/go-morph/convert"
	"github.com/morph-format/go-morph/eval"
	"github.com/morph-format/go-morph/ir"
	"github.com/morph-format/go-morph/parse"
)

// Engine owns a converter registry and compiles transformations against
// it. Registering converters while an evaluation that uses them is running
// is the caller's responsibility to avoid.
type Engine struct {
	reg *convert.Registry
}

// New returns an engine whose registry is seeded with the builtin
// converter set.
func New() *Engine {
	e := NewBare()
	e.reg.RegisterAll(convert.Builtins())
	return e
}

// NewBare returns an engine with an empty registry.
func NewBare() *Engine {
	return &Engine{
		reg: convert.NewRegistry(),
	}
}

// Register registers a converter, silently replacing any previous one of
// the same name.
func (e *Engine) Register(name string, fn convert.Func) {
	e.reg.Register(name, fn)
}

func (e *Engine) RegisterAll(funcs map[string]convert.Func) {
	e.reg.RegisterAll(funcs)
}

// Converters exposes the engine's registry.
func (e *Engine) Converters() *convert.Registry {
	return e.reg
}

// Compile compiles a transformation document. The returned Transformation
// is bound to the engine's registry and may be evaluated concurrently.
func (e *Engine) Compile(doc *ir.Node) (*Transformation, error) {
	t, err := compile.Compile(doc, e.reg)
	if err != nil {
		return nil, err
	}
	return &Transformation{t: t}, nil
}

// CompileBytes parses YAML or JSON bytes and compiles them.
func (e *Engine) CompileBytes(data []byte) (*Transformation, error) {
	doc, err := parse.Parse(data)
	if err != nil {
		return nil, err
	}
	return e.Compile(doc)
}

// Transformation is a compiled, reusable mapping bound to the engine that
// produced it.
type Transformation struct {
	t *compile.Transformation
}

// Evaluate applies the transformation to input. input is expected in
// decoded-JSON shape (map[string]any, []any, scalars). Absent source data
// never fails; converter errors are returned unmodified.
func (t *Transformation) Evaluate(input any) (any, error) {
	return eval.Evaluate(input, t.t)
}

// EvaluateBytes parses an input document from YAML or JSON bytes and
// evaluates it.
func (t *Transformation) EvaluateBytes(data []byte) (any, error) {
	input, err := parse.Document(data)
	if err != nil {
		return nil, err
	}
	return t.Evaluate(input)
}
