package compile

import (
	"fmt"
	"strings"
)

// Fragment is a compiled leaf rule. Path holds the dotted source path split
// into segments, Datatype names either a registered converter or (with a
// leading '$') a nested mapping, and IsArray marks the "[]" rule suffix.
type Fragment struct {
	Path     []string
	Datatype string
	IsArray  bool
}

// NestedPrefix marks a datatype that refers to a nested mapping rather
// than a converter.
const NestedPrefix = "$"

func (f *Fragment) IsNested() bool {
	return strings.HasPrefix(f.Datatype, NestedPrefix)
}

func (f *Fragment) String() string {
	dt := f.Datatype
	if f.IsArray {
		dt += "[]"
	}
	return strings.Join(f.Path, ".") + ":" + dt
}

// parseRule parses "path:datatype" with an optional trailing "[]" on the
// datatype. The grammar admits exactly one ':' and nonempty dot-separated
// path segments.
func parseRule(rule string) (*Fragment, error) {
	pathPart, datatype, found := strings.Cut(rule, ":")
	if !found {
		return nil, fmt.Errorf("%w: rule %q has no ':'", ErrMalformedConfig, rule)
	}
	if strings.Contains(datatype, ":") {
		return nil, fmt.Errorf("%w: rule %q has more than one ':'", ErrMalformedConfig, rule)
	}
	frag := &Fragment{}
	if strings.HasSuffix(datatype, "[]") {
		frag.IsArray = true
		datatype = strings.TrimSuffix(datatype, "[]")
	}
	if datatype == "" {
		return nil, fmt.Errorf("%w: rule %q has an empty datatype", ErrMalformedConfig, rule)
	}
	if pathPart == "" {
		return nil, fmt.Errorf("%w: rule %q has an empty path", ErrMalformedConfig, rule)
	}
	segments := strings.Split(pathPart, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: rule %q has an empty path segment", ErrMalformedConfig, rule)
		}
	}
	frag.Path = segments
	frag.Datatype = datatype
	return frag, nil
}
