package main

import (
	"context"

	"github.com/morph-format/go-morph/cmd/morph/commands"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
