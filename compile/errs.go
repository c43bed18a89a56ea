package compile

import "errors"

// ErrMalformedConfig is wrapped by every compile-time failure: missing
// properties, bad rule syntax, unresolved nested-mapping references, and
// unresolved converter names.
var ErrMalformedConfig = errors.New("malformed configuration")
