package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/jdhyun/famfolio"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validate and rewrite the ledger tables in canonical form"
}
func (*fmtCmd) Usage() string {
	return `fmt:
  Validates every row of the three tables and rewrites them in canonical
  form: transactions and deposits sorted by date, tickers normalized,
  quoting regularized. Run it after editing the CSV files by hand.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	var errs error
	txs := store.Transactions()
	for _, t := range txs {
		if err := t.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("transaction %s: %w", t.ID, err))
		}
	}
	deposits := store.Deposits()
	for _, d := range deposits {
		if err := d.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("deposit %s: %w", d.ID, err))
		}
	}
	plans := store.Plans()
	for _, p := range plans {
		if err := p.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("plan %s: %w", p.ID, err))
		}
	}
	if errs != nil {
		return fail(errs)
	}

	famfolio.SortForReplay(txs)
	if err := store.ReplaceTransactions(txs); err != nil {
		return fail(err)
	}
	famfolio.SortDepositsForReplay(deposits)
	if err := store.ReplaceDeposits(deposits); err != nil {
		return fail(err)
	}
	if err := store.ReplacePlans(plans); err != nil {
		return fail(err)
	}
	fmt.Printf("Formatted %d transaction(s), %d deposit(s), %d plan(s).\n", len(txs), len(deposits), len(plans))
	return subcommands.ExitSuccess
}
