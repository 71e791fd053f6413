package famfolio

import (
	"fmt"
	"strings"
)

// Holding is the detail view of one position: the position enriched with
// the security name, the current price and the position's own return.
type Holding struct {
	Position
	Name      string
	Current   Money
	Value     Money
	ReturnPct float64
}

// BuildHoldings enriches positions with names and current prices. A failed
// price fetch leaves that holding valued at zero; the failure is recorded
// in the cache.
func BuildHoldings(positions []Position, prices *Cache, names Namer) []Holding {
	out := make([]Holding, 0, len(positions))
	for _, p := range positions {
		h := Holding{Position: p, Name: names.ResolveName(p.Ticker)}
		price, err := prices.LatestClose(p.Ticker)
		if err == nil {
			h.Current = price
			h.Value = price.Mul(p.Remaining())
			if avg := p.AverageCost(); avg.IsPositive() {
				h.ReturnPct = price.Sub(avg).Float64() / avg.Float64() * 100
			}
		}
		out = append(out, h)
	}
	return out
}

// Snapshot is one fully rendered view of the family's accounts and
// holdings, recomputed from the current ledger state. It is what the CLI
// prints and what the assistant receives as grounding data.
type Snapshot struct {
	Date      Date
	Summaries []AccountSummary
	Holdings  []Holding
	Degraded  []TickerError
}

// TakeSnapshot runs one full computation pass over the store.
func TakeSnapshot(store *Store, quotes *Cache, names Namer, scope Filter) Snapshot {
	txs := store.Transactions()
	positions := Aggregate(txs, scope)
	var deposits []Deposit
	for _, d := range store.Deposits() {
		if scope.MatchDeposit(d) {
			deposits = append(deposits, d)
		}
	}
	var inScope []Transaction
	for _, t := range txs {
		if scope.MatchTransaction(t) {
			inScope = append(inScope, t)
		}
	}

	summaries := Summarize(inScope, deposits, positions, quotes)
	holdings := BuildHoldings(positions, quotes, names)
	return Snapshot{
		Date:      Today(),
		Summaries: summaries,
		Holdings:  holdings,
		Degraded:  quotes.Failures(),
	}
}

// TotalAssets sums the assets of every account in the snapshot.
func (s Snapshot) TotalAssets() Money {
	var total Money
	for _, sum := range s.Summaries {
		total = total.Add(sum.TotalAssets())
	}
	return total
}

// AccountsMarkdown renders the per-account summary table.
func (s Snapshot) AccountsMarkdown() string {
	var b strings.Builder
	b.WriteString("## Accounts\n\n")
	b.WriteString("| Owner | Account | Deposited | Cash | Stock value | Total | Return |\n")
	b.WriteString("|---|---|---:|---:|---:|---:|---:|\n")
	for _, sum := range s.Summaries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %.2f%% |\n",
			sum.Owner, sum.Account, sum.Deposited, sum.CashBalance(), sum.StockValue, sum.TotalAssets(), sum.ReturnPct())
	}
	fmt.Fprintf(&b, "\nTotal assets: **%s**\n", s.TotalAssets())
	return b.String()
}

// HoldingsMarkdown renders the per-position detail table.
func (s Snapshot) HoldingsMarkdown() string {
	var b strings.Builder
	b.WriteString("## Holdings\n\n")
	b.WriteString("| Owner | Account | Security | Qty | Avg cost | Current | Value | Return | Last buy |\n")
	b.WriteString("|---|---|---|---:|---:|---:|---:|---:|---|\n")
	for _, h := range s.Holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %.2f%% | %s |\n",
			h.Owner, h.Account, h.Name, h.Remaining(), h.AverageCost(), h.Current, h.Value, h.ReturnPct, h.LastBuy)
	}
	return b.String()
}

// Markdown renders the snapshot as two markdown tables, accounts then
// holdings.
func (s Snapshot) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Family assets on %s\n\n", s.Date)
	b.WriteString(s.AccountsMarkdown())
	b.WriteString("\n")
	b.WriteString(s.HoldingsMarkdown())

	if len(s.Degraded) > 0 {
		b.WriteString("\n> Prices unavailable for: ")
		for i, f := range s.Degraded {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Ticker)
		}
		b.WriteString(" (shown as zero).\n")
	}
	return b.String()
}
