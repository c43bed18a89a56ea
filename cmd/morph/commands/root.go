package commands

import (
	"github.com/scott-cotton/cli"
)

const usageText = `morph - declarative document transformation

Usage:
  morph apply -m <mapping> [input...]    Transform input documents
  morph converters                       List available converters

The mapping document (YAML or JSON) has a required properties section and
an optional nested section of named sub-mappings:

  properties:
    name: user.first:upper
    home: address:$addr
  nested:
    $addr:
      city: c:upper

Examples:
  morph apply -m mapping.yaml input.yaml
  morph apply -m mapping.yaml -o json input.yaml other.yaml
  cat input.json | morph apply -m mapping.yaml
  morph apply -m mapping.yaml --check expected.yaml input.yaml
  morph apply -m mapping.yaml --defaults defaults.yaml input.yaml`

// Root returns the root command for morph.
func Root() *cli.Command {
	return cli.NewCommand("morph").
		WithSynopsis("morph - declarative document transformation").
		WithDescription(usageText).
		WithSubs(
			ApplyCommand(),
			ConvertersCommand(),
		)
}
