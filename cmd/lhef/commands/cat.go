package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/hepstream/lhef/cmd/lhef/lhefile"
	"github.com/hepstream/lhef/parse"
)

type catConfig struct {
	*cli.Command
}

// CatCommand returns the cat subcommand.
func CatCommand() *cli.Command {
	cfg := &catConfig{}
	return cli.NewCommandAt(&cfg.Command, "cat").
		WithSynopsis("cat <file> - Re-emit a normalized stream on stdout").
		WithRun(cfg.run)
}

func (cfg *catConfig) run(cc *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: lhef cat <file>", cli.ErrUsage)
	}
	in, err := lhefile.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()
	r, err := parse.NewReader(in)
	if err != nil {
		return err
	}
	return transcribe(r, cc.Out, nil)
}
