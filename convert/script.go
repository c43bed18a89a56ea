package convert

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Script compiles an expr expression into a converter. The extracted raw
// value is bound to "value" in the expression environment:
//
//	fn, err := convert.Script(`upper(trim(value))`)
//
// Compilation errors surface here; runtime errors surface from the
// returned converter like any other converter failure.
func Script(src string) (Func, error) {
	prg, err := expr.Compile(src, expr.Env(scriptEnv{"value": nil}))
	if err != nil {
		return nil, fmt.Errorf("script %q: %w", src, err)
	}
	return func(value any) (any, error) {
		return run(prg, value)
	}, nil
}

type scriptEnv map[string]any

func run(prg *vm.Program, value any) (any, error) {
	return expr.Run(prg, scriptEnv{"value": value})
}
