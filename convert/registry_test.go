package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if r.Has("upper") {
		t.Error("fresh registry has upper")
	}
	r.Register("upper", Upper)
	if !r.Has("upper") {
		t.Error("registered converter not found")
	}
	fn, ok := r.Get("upper")
	if !ok {
		t.Fatal("Get failed after Register")
	}
	v, err := fn("ann")
	if err != nil {
		t.Fatal(err)
	}
	if v != "ANN" {
		t.Errorf("got %v", v)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get found unregistered name")
	}
}

func TestRegistryOverwrite(t *testing.T) {
	r := NewRegistry()
	r.Register("x", Upper)
	r.Register("x", Lower)
	fn, _ := r.Get("x")
	v, err := fn("AnN")
	if err != nil {
		t.Fatal(err)
	}
	if v != "ann" {
		t.Errorf("overwrite did not replace converter: got %v", v)
	}
}

func TestRegisterAllAndNames(t *testing.T) {
	r := NewRegistry()
	r.RegisterAll(map[string]Func{
		"b": Lower,
		"a": Upper,
		"c": Trim,
	})
	if d := cmp.Diff([]string{"a", "b", "c"}, r.Names()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
