package famfolio

import "sort"

// AccountSummary is the derived balance sheet of one (owner, account) pair.
type AccountSummary struct {
	Owner      string
	Account    string
	Deposited  Money // lifetime cash put in
	CashFlow   Money // signed: buys negative, sells positive
	StockCost  Money // cost basis of the remaining positions
	StockValue Money // mark-to-market value of the remaining positions
}

// CashBalance is the cash sitting idle in the account.
func (s AccountSummary) CashBalance() Money { return s.Deposited.Add(s.CashFlow) }

// TotalAssets is cash plus the market value of the holdings.
func (s AccountSummary) TotalAssets() Money { return s.CashBalance().Add(s.StockValue) }

// ReturnPct is the account's return over everything deposited, in percent.
// An account with nothing deposited returns 0 rather than dividing by zero.
func (s AccountSummary) ReturnPct() float64 {
	if s.Deposited.IsZero() {
		return 0
	}
	return s.TotalAssets().Sub(s.Deposited).Float64() / s.Deposited.Float64() * 100
}

// Summarize combines deposits, transaction cash flow and position valuations
// into per-account summaries. The join over (owner, account) keys is an
// outer join: an account seen only in deposits, or only in transactions,
// still gets a row with the missing side at zero.
//
// Market values come from the latest close in the cache; a failed fetch
// degrades that line item to zero (recorded in the cache's failures) and
// never aborts the pass.
func Summarize(txs []Transaction, deposits []Deposit, positions []Position, prices *Cache) []AccountSummary {
	type key struct{ owner, account string }
	index := make(map[key]*AccountSummary)
	row := func(owner, account string) *AccountSummary {
		k := key{owner, account}
		s, ok := index[k]
		if !ok {
			s = &AccountSummary{Owner: owner, Account: account}
			index[k] = s
		}
		return s
	}

	for _, d := range deposits {
		s := row(d.Owner, d.Account)
		s.Deposited = s.Deposited.Add(d.Amount)
	}
	for _, t := range txs {
		s := row(t.Owner, t.Account)
		s.CashFlow = s.CashFlow.Add(t.CashFlow())
	}
	for _, p := range positions {
		s := row(p.Owner, p.Account)
		s.StockCost = s.StockCost.Add(p.CostBasis())
		price, err := prices.LatestClose(p.Ticker)
		if err != nil {
			continue // value stays zero for this line, the pass goes on
		}
		s.StockValue = s.StockValue.Add(price.Mul(p.Remaining()))
	}

	out := make([]AccountSummary, 0, len(index))
	for _, s := range index {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Owner != b.Owner {
			return a.Owner < b.Owner
		}
		return a.Account < b.Account
	})
	return out
}
