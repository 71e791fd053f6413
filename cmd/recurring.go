package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/jdhyun/famfolio"
)

type recurringCmd struct {
	apply bool
}

func (*recurringCmd) Name() string     { return "recurring" }
func (*recurringCmd) Synopsis() string { return "list recurring-buy plans, or apply them with -apply" }
func (*recurringCmd) Usage() string {
	return `recurring [-apply]

  Lists the recurring-buy plans. With -apply, backfills each plan: for every
  trading day since the plan's last run one buy is synthesized at that day's
  close, then the plan's cursor advances to today. Running it twice on the
  same day is a no-op the second time.
`
}

func (c *recurringCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.apply, "apply", false, "Synthesize the missed buys and advance the cursors")
}

func (c *recurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if !c.apply {
		var b strings.Builder
		b.WriteString("| Owner | Account | Ticker | Qty/day | Start | Caught up to | Memo |\n")
		b.WriteString("|---|---|---|---:|---|---|---|\n")
		for _, p := range store.Plans() {
			caughtUp := p.LastApplied.String()
			if caughtUp == "" {
				caughtUp = "(never run)"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
				p.Owner, p.Account, p.Ticker, p.Quantity, p.Start, caughtUp, p.Memo)
		}
		printMarkdown(b.String())
		return subcommands.ExitSuccess
	}

	txs, plans, applyErr := famfolio.ApplyPlans(store.Plans(), famfolio.Today(), newQuotes())
	if len(txs) > 0 {
		if err := store.AppendTransactions(txs...); err != nil {
			return fail(err)
		}
	}
	if err := store.ReplacePlans(plans); err != nil {
		return fail(err)
	}
	fmt.Printf("Applied recurring plans: %d buy(s) synthesized.\n", len(txs))
	if applyErr != nil {
		// Skipped plans keep their cursor and will be retried next run.
		fmt.Fprintln(os.Stderr, "Some plans were skipped:", applyErr)
	}
	return subcommands.ExitSuccess
}
