// Package ir provides the intermediate representation (IR) for morph
// mapping specifications.
//
// # Overview
//
// A mapping specification is a recursive structure: a rule string such as
// "user.first:upper", an ordered list of specifications, or an object whose
// values are specifications. The IR represents all three as a single
// recursive tagged union, ir.Node, regardless of whether the specification
// was parsed from YAML, JSON, or built programmatically.
//
// The IR carries no position information; it is purely semantic. Values are
// placed in fields depending on the node type:
//
//   - RuleType: a leaf rule string (Rule)
//   - ArrayType: an ordered list of nodes (Values)
//   - ObjectType: key-value pairs (Fields and Values, parallel slices)
//
// Object field order is deterministic (sorted on construction from a Go map)
// but carries no meaning.
package ir
