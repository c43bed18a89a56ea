package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Compile bool
	Eval    bool
	Resolve bool
}

var d *debug

func init() {
	d = &debug{}
	d.Compile = boolEnv("MORPH_DEBUG_COMPILE")
	d.Eval = boolEnv("MORPH_DEBUG_EVAL")
	d.Resolve = boolEnv("MORPH_DEBUG_RESOLVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Compile() bool {
	return d.Compile
}
func Eval() bool {
	return d.Eval
}
func Resolve() bool {
	return d.Resolve
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
