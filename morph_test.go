package morph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morph-format/go-morph/compile"
	"github.com/morph-format/go-morph/parse"
)

type engineTest struct {
	doc string
	in  string
	res any
}

var engineTests = []engineTest{
	{
		doc: "properties:\n  name: user.first:upper",
		in:  "user:\n  first: ann",
		res: map[string]any{"name": "ANN"},
	},
	{
		doc: "properties:\n  name: user.first:upper",
		in:  "user: {}",
		res: map[string]any{"name": nil},
	},
	{
		doc: "properties:\n  tags: meta.tags:upper[]",
		in:  "meta:\n  tags:\n    - a\n    - b",
		res: map[string]any{"tags": []any{"A", "B"}},
	},
	{
		doc: "properties:\n  tags: meta.tags:upper[]",
		in:  "meta:\n  tags: not-a-list",
		res: map[string]any{"tags": []any{}},
	},
	{
		doc: `
properties:
  home: address:$addr
nested:
  $addr:
    city: c:upper
`,
		in:  "address:\n  c: nyc",
		res: map[string]any{"home": map[string]any{"city": "NYC"}},
	},
	{
		doc: `{"properties": {"id": "user.id:int"}}`,
		in:  `{"user": {"id": "42"}}`,
		res: map[string]any{"id": int64(42)},
	},
}

func TestEngine(t *testing.T) {
	eng := New()
	for i, tc := range engineTests {
		tr, err := eng.CompileBytes([]byte(tc.doc))
		if err != nil {
			t.Errorf("test %d: compile: %v", i, err)
			continue
		}
		out, err := tr.EvaluateBytes([]byte(tc.in))
		if err != nil {
			t.Errorf("test %d: evaluate: %v", i, err)
			continue
		}
		if d := cmp.Diff(tc.res, out); d != "" {
			t.Errorf("test %d: (-want +got):\n%s", i, d)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	eng := New()
	bad := []string{
		// no properties
		"nested:\n  $a:\n    x: a:int",
		// unresolved nested reference
		"properties:\n  x: a.b:$missing",
		// unresolved converter
		"properties:\n  x: a.b:nosuch",
		// bad rule
		"properties:\n  x: noseparator",
		// nested section not an object
		"properties:\n  x: a:int\nnested:\n  - a:int",
	}
	for i, doc := range bad {
		if _, err := eng.CompileBytes([]byte(doc)); !errors.Is(err, compile.ErrMalformedConfig) {
			t.Errorf("test %d: got %v, want ErrMalformedConfig", i, err)
		}
	}
}

func TestBadDocumentBytes(t *testing.T) {
	eng := New()
	if _, err := eng.CompileBytes([]byte("properties: [unclosed")); !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}

func TestCustomConverter(t *testing.T) {
	eng := NewBare()
	eng.Register("shout", func(v any) (any, error) {
		s, _ := v.(string)
		return s + "!", nil
	})
	tr, err := eng.CompileBytes([]byte("properties:\n  x: a:shout"))
	if err != nil {
		t.Fatal(err)
	}
	out, err := tr.Evaluate(map[string]any{"a": "hey"})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(map[string]any{"x": "hey!"}, out); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestConcurrentEvaluate(t *testing.T) {
	eng := New()
	tr, err := eng.CompileBytes([]byte("properties:\n  name: user.first:upper"))
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				out, err := tr.Evaluate(map[string]any{"user": map[string]any{"first": "ann"}})
				if err != nil {
					done <- err
					return
				}
				if out.(map[string]any)["name"] != "ANN" {
					done <- errors.New("bad output")
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}
