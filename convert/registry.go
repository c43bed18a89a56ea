// Package convert defines datatype converters and their registry. A
// converter turns one extracted raw value into an output value; mapping
// rules refer to converters by name.
package convert

import (
	"maps"
	"slices"
	"sync"
)

// Func is a datatype converter. It is assumed total and synchronous; a
// non-nil error aborts the evaluation that invoked it and is returned to
// the caller unmodified.
type Func func(value any) (any, error)

// Registry maps datatype names to converters. Registration silently
// replaces an existing name; there is no removal.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

func NewRegistry() *Registry {
	return &Registry{
		funcs: map[string]Func{},
	}
}

func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

func (r *Registry) RegisterAll(funcs map[string]Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, fn := range funcs {
		r.funcs[name] = fn
	}
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, present := r.funcs[name]
	return present
}

func (r *Registry) Get(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, present := r.funcs[name]
	return fn, present
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.funcs))
}
