package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	scope scopeFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the per-account asset summary" }
func (*summaryCmd) Usage() string {
	return `summary [-owner <o>] [-account <a>]

  Displays every account with its deposits, cash balance, stock value,
  total assets and overall return.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.scope.setFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := takeSnapshot(c.scope.filter())
	if err != nil {
		return fail(err)
	}
	printMarkdown(snap.AccountsMarkdown())
	return subcommands.ExitSuccess
}
