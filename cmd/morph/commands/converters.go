package commands

import (
	"fmt"

	morph "github.com/morph-format/go-morph"
	"github.com/scott-cotton/cli"
)

// ConvertersCommand returns the converters subcommand.
func ConvertersCommand() *cli.Command {
	return cli.NewCommand("converters").
		WithSynopsis("converters - List available converters").
		WithRun(run)
}

func run(cc *cli.Context, args []string) error {
	for _, name := range morph.New().Converters().Names() {
		fmt.Fprintln(cc.Out, name)
	}
	return nil
}
