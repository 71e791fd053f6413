package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type holdingsCmd struct {
	scope scopeFlags
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display every open position with its current value" }
func (*holdingsCmd) Usage() string {
	return `holdings [-owner <o>] [-account <a>] [-ticker <t>]

  Displays each open position with its security name, remaining quantity,
  average cost, current price and return.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	c.scope.setFlags(f)
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := takeSnapshot(c.scope.filter())
	if err != nil {
		return fail(err)
	}
	printMarkdown(snap.HoldingsMarkdown())
	return subcommands.ExitSuccess
}
