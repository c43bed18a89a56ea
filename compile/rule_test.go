package compile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type ruleTest struct {
	in  string
	res *Fragment
	err bool
}

var ruleTests = []ruleTest{
	{
		in:  "user.first:upper",
		res: &Fragment{Path: []string{"user", "first"}, Datatype: "upper"},
	},
	{
		in:  "meta.tags:upper[]",
		res: &Fragment{Path: []string{"meta", "tags"}, Datatype: "upper", IsArray: true},
	},
	{
		in:  "address:$addr",
		res: &Fragment{Path: []string{"address"}, Datatype: "$addr"},
	},
	{
		in:  "items:$item[]",
		res: &Fragment{Path: []string{"items"}, Datatype: "$item", IsArray: true},
	},
	{
		in:  "$root.user.id:int",
		res: &Fragment{Path: []string{"$root", "user", "id"}, Datatype: "int"},
	},
	{in: "nocolon", err: true},
	{in: "a:b:c", err: true},
	{in: ":upper", err: true},
	{in: "a.b:", err: true},
	{in: "a.b:[]", err: true},
	{in: "a..b:upper", err: true},
	{in: ".a:upper", err: true},
	{in: "a.:upper", err: true},
}

func TestParseRule(t *testing.T) {
	for i, tc := range ruleTests {
		frag, err := parseRule(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("test %d (%q): expected error, got %v", i, tc.in, frag)
			} else if !errors.Is(err, ErrMalformedConfig) {
				t.Errorf("test %d (%q): error %v is not ErrMalformedConfig", i, tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d (%q): %v", i, tc.in, err)
			continue
		}
		if d := cmp.Diff(tc.res, frag); d != "" {
			t.Errorf("test %d (%q): (-want +got):\n%s", i, tc.in, d)
		}
	}
}

func TestFragmentString(t *testing.T) {
	for _, tc := range ruleTests {
		if tc.err {
			continue
		}
		if got := tc.res.String(); got != tc.in {
			t.Errorf("String(): got %q, want %q", got, tc.in)
		}
	}
}
