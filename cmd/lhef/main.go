package main

import (
	"context"

	"github.com/scott-cotton/cli"

	"github.com/hepstream/lhef/cmd/lhef/commands"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
