package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/jdhyun/famfolio"
)

type txCmd struct {
	scope scopeFlags
	start string
	end   string
	head  int
	tail  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list ledger transactions, most recent first" }
func (*txCmd) Usage() string {
	return `tx [-owner <o>] [-account <a>] [-ticker <t>] [-s <start>] [-d <end>] [-head <n> | -tail <n>]

  Lists transactions from the ledger, with options for filtering by scope
  and date range, and for limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.scope.setFlags(f)
	f.StringVar(&c.start, "s", "", "Only rows on or after this date (YYYY-MM-DD)")
	f.StringVar(&c.end, "d", "", "Only rows on or before this date (YYYY-MM-DD)")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Println("Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	var start, end famfolio.Date
	var err error
	if c.start != "" {
		if start, err = famfolio.ParseDate(c.start); err != nil {
			fmt.Println("Error parsing start date:", err)
			return subcommands.ExitUsageError
		}
	}
	if c.end != "" {
		if end, err = famfolio.ParseDate(c.end); err != nil {
			fmt.Println("Error parsing end date:", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	scope := c.scope.filter()
	var txs []famfolio.Transaction
	for _, t := range store.Transactions() {
		if !scope.MatchTransaction(t) {
			continue
		}
		if !start.IsZero() && t.Date.Before(start) {
			continue
		}
		if !end.IsZero() && t.Date.After(end) {
			continue
		}
		txs = append(txs, t)
	}
	famfolio.SortForDisplay(txs)

	if c.head > 0 && c.head < len(txs) {
		txs = txs[:c.head]
	}
	if c.tail > 0 && c.tail < len(txs) {
		txs = txs[len(txs)-c.tail:]
	}

	var b strings.Builder
	b.WriteString("| Date | Owner | Account | Side | Ticker | Price | Qty | Total | Memo |\n")
	b.WriteString("|---|---|---|---|---|---:|---:|---:|---|\n")
	for _, t := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			t.Date, t.Owner, t.Account, t.Side, t.Ticker, t.Price, t.Quantity, t.Cost(), t.Memo)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
