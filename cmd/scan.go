package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/jdhyun/famfolio"
)

type scanCmd struct {
	window int
}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "scan the watchlist for buy-the-dip opportunities" }
func (*scanCmd) Usage() string {
	return `scan [-w <days>] [ticker ...]

  Compares each watched ticker's current price against its trailing-window
  high close and classifies the drawdown: strong-buy at -10% or worse,
  partial-buy at -5%, breakout at or above the high. Without arguments the
  watchlist is every ticker ever traded.
`
}

func (c *scanCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.window, "w", famfolio.DefaultDrawdownWindow, "Trailing window in days")
}

func (c *scanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	watchlist := f.Args()
	if len(watchlist) == 0 {
		store, err := openStore()
		if err != nil {
			return fail(err)
		}
		watchlist = store.Tickers()
	}
	if len(watchlist) == 0 {
		fmt.Println("Nothing to scan: the ledger has no tickers yet.")
		return subcommands.ExitSuccess
	}

	results := famfolio.ScanDrawdowns(watchlist, c.window, newQuotes(), famfolio.Today())

	var b strings.Builder
	fmt.Fprintf(&b, "| Ticker | %d-day high | Current | Drawdown | Signal |\n", c.window)
	b.WriteString("|---|---:|---:|---:|---|\n")
	for _, d := range results {
		fmt.Fprintf(&b, "| %s | %s | %s | %.2f%% | %s |\n",
			d.Ticker, d.WindowHigh, d.Current, d.DrawdownPct, d.Signal)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
