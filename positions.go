package famfolio

import "sort"

// Position is the derived holding of one security in one account. It is
// recomputed from the ledger on every pass and never persisted.
type Position struct {
	Owner      string
	Account    string
	Ticker     string
	BoughtQty  Quantity // total quantity ever bought
	BoughtCost Money    // total won ever spent on buys
	SoldQty    Quantity // total quantity ever sold
	LastBuy    Date     // most recent buy date, for the detail view
}

// Remaining is the quantity still held.
func (p Position) Remaining() Quantity { return p.BoughtQty.Sub(p.SoldQty) }

// AverageCost is the average unit cost of the bought shares. Sells never
// change it: there is no lot matching, the remainder keeps the average of
// everything ever bought. Zero when nothing was bought.
func (p Position) AverageCost() Money {
	if !p.BoughtQty.IsPositive() {
		return Money{}
	}
	return p.BoughtCost.Div(p.BoughtQty)
}

// CostBasis is the invested capital still at work: remaining quantity at
// average cost.
func (p Position) CostBasis() Money { return p.AverageCost().Mul(p.Remaining()) }

// Aggregate folds transactions into per-(owner, account, ticker) positions.
// Positions with nothing remaining are dropped, not clamped. The result is
// sorted by owner, account, ticker and the function has no side effects.
func Aggregate(txs []Transaction, scope Filter) []Position {
	type key struct{ owner, account, ticker string }
	index := make(map[key]*Position)

	for _, t := range txs {
		if !scope.MatchTransaction(t) {
			continue
		}
		k := key{t.Owner, t.Account, t.Ticker}
		p, ok := index[k]
		if !ok {
			p = &Position{Owner: t.Owner, Account: t.Account, Ticker: t.Ticker}
			index[k] = p
		}
		switch t.Side {
		case Buy:
			p.BoughtQty = p.BoughtQty.Add(t.Quantity)
			p.BoughtCost = p.BoughtCost.Add(t.Cost())
			if t.Date.After(p.LastBuy) {
				p.LastBuy = t.Date
			}
		case Sell:
			p.SoldQty = p.SoldQty.Add(t.Quantity)
		}
	}

	out := make([]Position, 0, len(index))
	for _, p := range index {
		if p.Remaining().IsPositive() {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Owner != b.Owner {
			return a.Owner < b.Owner
		}
		if a.Account != b.Account {
			return a.Account < b.Account
		}
		return a.Ticker < b.Ticker
	})
	return out
}
