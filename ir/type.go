package ir

import "fmt"

type Type int

const (
	RuleType Type = iota
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		RuleType:   "Rule",
		ArrayType:  "Array",
		ObjectType: "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Rule":   RuleType,
		"Array":  ArrayType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		RuleType,
		ArrayType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	return t == RuleType
}
