package commands

import (
	"fmt"
	"io"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/hepstream/lhef"
	"github.com/hepstream/lhef/cmd/lhef/lhefile"
	"github.com/hepstream/lhef/parse"
)

type filterConfig struct {
	*cli.Command
}

// FilterCommand returns the filter subcommand.
func FilterCommand() *cli.Command {
	cfg := &filterConfig{}
	return cli.NewCommandAt(&cfg.Command, "filter").
		WithSynopsis("filter <expr> <in> [out] - Keep events matching an expression").
		WithRun(cfg.run)
}

func (cfg *filterConfig) run(cc *cli.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: usage: lhef filter <expr> <in> [out]", cli.ErrUsage)
	}
	prg, err := expr.Compile(args[0], expr.AsBool())
	if err != nil {
		return fmt.Errorf("bad filter expression: %w", err)
	}

	in, err := lhefile.Open(args[1])
	if err != nil {
		return err
	}
	defer in.Close()
	r, err := parse.NewReader(in)
	if err != nil {
		return err
	}

	var out io.Writer = cc.Out
	if len(args) == 3 {
		f, err := lhefile.Create(args[2])
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	kept, seen := 0, 0
	err = transcribe(r, out, func(ev *lhef.Event) (bool, error) {
		seen++
		ok, err := evalFilter(prg, ev)
		if err != nil {
			return false, err
		}
		if ok {
			kept++
		}
		return ok, nil
	})
	if err != nil {
		return err
	}
	if len(args) == 3 {
		fmt.Fprintf(cc.Out, "kept %d of %d events\n", kept, seen)
	}
	return nil
}

func evalFilter(prg *vm.Program, ev *lhef.Event) (bool, error) {
	res, err := expr.Run(prg, eventEnv(ev))
	if err != nil {
		return false, err
	}
	return res.(bool), nil
}

// eventEnv exposes the scalar event fields to filter expressions.
func eventEnv(ev *lhef.Event) map[string]any {
	return map[string]any{
		"NUP":    int(ev.NUP),
		"IDRUP":  int(ev.IDRUP),
		"XWGTUP": ev.XWGTUP,
		"SCALUP": ev.SCALUP,
		"AQEDUP": ev.AQEDUP,
		"AQCDUP": ev.AQCDUP,
	}
}
