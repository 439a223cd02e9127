package commands

import (
	"github.com/scott-cotton/cli"
)

const usageText = `lhef - inspect and transform Les Houches event files

Usage:
  lhef info <file>                Show run information and event count
  lhef cat <file>                 Re-emit a normalized stream on stdout
  lhef filter <expr> <in> [out]   Keep events matching an expression
  lhef diff <a> <b>               Diff two files' normalized forms

Files ending in .gz, or starting with the gzip magic bytes, are
decompressed transparently.

Examples:
  lhef info sample.lhe.gz
  lhef cat sample.lhe.gz > sample.lhe
  lhef filter 'NUP > 2 && XWGTUP > 0' sample.lhe kept.lhe.gz
  lhef diff a.lhe b.lhe.gz`

// Root returns the root command for lhef.
func Root() *cli.Command {
	return cli.NewCommand("lhef").
		WithSynopsis("lhef - inspect and transform Les Houches event files").
		WithDescription(usageText).
		WithSubs(
			InfoCommand(),
			CatCommand(),
			FilterCommand(),
			DiffCommand(),
		)
}
