package commands

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/hepstream/lhef/cmd/lhef/lhefile"
	"github.com/hepstream/lhef/parse"
)

type diffConfig struct {
	*cli.Command
}

// DiffCommand returns the diff subcommand.
func DiffCommand() *cli.Command {
	cfg := &diffConfig{}
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff <a> <b> - Diff two files' normalized forms").
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: lhef diff <a> <b>", cli.ErrUsage)
	}
	a, err := normalize(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	b, err := normalize(args[1])
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}
	if a == b {
		fmt.Fprintln(cc.Out, "files are equivalent")
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	return nil
}

// normalize parses an event file and re-emits it through the writer,
// so two files differing only in formatting compare equal.
func normalize(path string) (string, error) {
	in, err := lhefile.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()
	r, err := parse.NewReader(in)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := transcribe(r, &buf, nil); err != nil {
		return "", err
	}
	return buf.String(), nil
}
