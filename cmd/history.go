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

type historyCmd struct {
	scope   scopeFlags
	monthly bool
	chart   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "reconstruct the invested/value/profit series" }
func (*historyCmd) Usage() string {
	return `history [-owner <o>] [-account <a>] [-ticker <t>] [-monthly] [-chart <file.png>]

  Replays the ledger and reconstructs, day by day from the first transaction
  to today, the cumulative invested capital, the mark-to-market value and
  the profit. -monthly keeps only month-end rows; -chart also writes the
  series as a PNG line chart.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	c.scope.setFlags(f)
	f.BoolVar(&c.monthly, "monthly", false, "Show month-end rows only")
	f.StringVar(&c.chart, "chart", "", "Also write the series as a PNG chart to this file")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	perf := famfolio.BuildSeries(store.Transactions(), c.scope.filter(), newQuotes(), famfolio.Today())
	if len(perf.Points) == 0 {
		fmt.Println("No transactions in scope.")
		return subcommands.ExitSuccess
	}
	if c.monthly {
		perf = perf.ResampleMonthly()
	}

	var b strings.Builder
	b.WriteString("| Date | Invested | Value | Profit |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, pt := range perf.Points {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", pt.Date, pt.Invested, pt.Value, pt.Profit.SignedString())
	}
	if len(perf.Degraded) > 0 {
		fmt.Fprintf(&b, "\n> Prices unavailable for: %s (value contribution is zero).\n", strings.Join(perf.Degraded, ", "))
	}
	printMarkdown(b.String())

	if c.chart != "" {
		png, err := famfolio.RenderChart(perf, "Family portfolio")
		if err != nil {
			return fail(err)
		}
		if err := os.WriteFile(c.chart, png, 0o644); err != nil {
			return fail(err)
		}
		fmt.Printf("Chart written to %s.\n", c.chart)
	}
	return subcommands.ExitSuccess
}
