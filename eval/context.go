package eval

// Reserved path segments. They read off the evaluation context, never the
// input data, so document fields with the same names cannot shadow them.
const (
	RootSegment   = "$root"
	ParentSegment = "$parent"
)

// Context carries the evaluation state through the recursive walk: the
// current scope for path extraction, the scope enclosing the nested mapping
// being evaluated (nil at the top level), and the original input document.
type Context struct {
	Scope  any
	Parent any
	Root   any
}

// lookup descends path segment-by-segment from the current scope. It is
// total: a missing field or a non-object intermediate reports absence
// rather than failing. Reserved segments jump to the context's root or
// parent scope at any position.
func (c Context) lookup(path []string) (any, bool) {
	cur := c.Scope
	for _, seg := range path {
		switch seg {
		case RootSegment:
			cur = c.Root
			continue
		case ParentSegment:
			if c.Parent == nil {
				return nil, false
			}
			cur = c.Parent
			continue
		}
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, present := obj[seg]
		if !present {
			return nil, false
		}
		cur = v
	}
	return cur, true
}
