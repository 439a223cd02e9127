package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/hepstream/lhef/cmd/lhef/lhefile"
	"github.com/hepstream/lhef/parse"
	"github.com/hepstream/lhef/syntax"
)

type infoConfig struct {
	*cli.Command
	NoColor bool `cli:"name=no-color desc='disable colorized output'"`
}

// InfoCommand returns the info subcommand.
func InfoCommand() *cli.Command {
	cfg := &infoConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "info").
		WithSynopsis("info <file> - Show run information and event count").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *infoConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: lhef info <file>", cli.ErrUsage)
	}
	if cfg.NoColor || !terminalWriter(cc.Out) {
		color.NoColor = true
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

	label := color.New(color.Bold).SprintFunc()
	run := r.RunInfo()
	fmt.Fprintf(cc.Out, "%s %s\n", label("version:"), r.Version())
	fmt.Fprintf(cc.Out, "%s %d %d\n", label("beams:"), run.IDBMUP[0], run.IDBMUP[1])
	fmt.Fprintf(cc.Out, "%s %s %s GeV\n", label("energies:"),
		syntax.FormatFloat(run.EBMUP[0]), syntax.FormatFloat(run.EBMUP[1]))
	fmt.Fprintf(cc.Out, "%s %d %d\n", label("pdf sets:"), run.PDFSUP[0], run.PDFSUP[1])
	fmt.Fprintf(cc.Out, "%s %d\n", label("weight scheme:"), run.IDWTUP)
	if len(run.Attr) > 0 {
		fmt.Fprintf(cc.Out, "%s\n", label("init attributes:"))
		for name, value := range run.Attr {
			fmt.Fprintf(cc.Out, "  %s=%q\n", name, value)
		}
	}
	fmt.Fprintf(cc.Out, "%s %d\n", label("subprocesses:"), run.NPRUP)
	for i := range run.XSECUP {
		fmt.Fprintf(cc.Out, "  %s %s  %s %s +- %s  %s %s\n",
			color.CyanString("id"), syntax.FormatInt(run.LPRUP[i]),
			color.CyanString("xsec"), syntax.FormatFloat(run.XSECUP[i]),
			syntax.FormatFloat(run.XERRUP[i]),
			color.CyanString("max weight"), syntax.FormatFloat(run.XMAXUP[i]))
	}

	events := 0
	particles := 0
	for {
		ev, err := r.Event()
		if err != nil {
			return err
		}
		if ev == nil {
			break
		}
		events++
		particles += int(ev.NUP)
	}
	fmt.Fprintf(cc.Out, "%s %d (%d particles)\n", label("events:"), events, particles)
	return nil
}

// terminalWriter reports whether w is a terminal. Redirected or
// in-memory writers get plain output.
func terminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
