package famfolio

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PerformancePoint is one day of the reconstructed performance series.
type PerformancePoint struct {
	Date     Date
	Invested Money // cumulative capital at work
	Value    Money // mark-to-market value of the held quantity
	Profit   Money // Value minus Invested
}

// Performance is a daily performance series over a transaction scope.
// Degraded lists the tickers whose price history could not be fetched;
// their market-value contribution is zero for the whole range while their
// invested capital still counts, exactly what a reader of the chart needs
// to know before trusting a dip.
type Performance struct {
	Points   []PerformancePoint
	Degraded []string
}

// BuildSeries replays the in-scope transactions chronologically and
// reconstructs, for every calendar day from the earliest transaction to
// 'today' inclusive, the cumulative invested capital and the mark-to-market
// value, summed over every ticker in scope.
//
// Per ticker, buys add price*qty to the invested delta and qty to the held
// delta, sells subtract both; a running sum turns the deltas into series.
// The close series is forward-filled over non-trading days and zero before
// the first known price, and the value series is held quantity times close.
func BuildSeries(txs []Transaction, scope Filter, quotes *Cache, today Date) Performance {
	var inScope []Transaction
	for _, t := range txs {
		if scope.MatchTransaction(t) {
			inScope = append(inScope, t)
		}
	}
	if len(inScope) == 0 {
		return Performance{}
	}
	SortForReplay(inScope)

	from := inScope[0].Date
	if from.After(today) {
		from = today
	}
	days := 0
	for range Days(from, today) {
		days++
	}

	byTicker := make(map[string][]Transaction)
	for _, t := range inScope {
		byTicker[t.Ticker] = append(byTicker[t.Ticker], t)
	}
	tickers := make([]string, 0, len(byTicker))
	for ticker := range byTicker {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	invested := make([]decimal.Decimal, days)
	value := make([]decimal.Decimal, days)
	var degraded []string

	for _, ticker := range tickers {
		var investDelta, qtyDelta Timeline
		for _, t := range byTicker[ticker] {
			switch t.Side {
			case Buy:
				investDelta.AddAt(t.Date, t.Cost().Decimal())
				qtyDelta.AddAt(t.Date, t.Quantity.Decimal())
			case Sell:
				investDelta.AddAt(t.Date, t.Cost().Decimal().Neg())
				qtyDelta.AddAt(t.Date, t.Quantity.Decimal().Neg())
			}
		}
		cumInvested := investDelta.CumSum(from, today)
		cumQty := qtyDelta.CumSum(from, today)
		for i := range invested {
			invested[i] = invested[i].Add(cumInvested[i])
		}

		candles, err := quotes.DailyPrices(ticker, from, today)
		if err != nil {
			degraded = append(degraded, ticker)
			continue
		}
		var closes Timeline
		for _, c := range candles {
			closes.Set(c.Date, c.Close.Decimal())
		}
		filled := closes.ForwardFill(from, today)
		for i := range value {
			value[i] = value[i].Add(cumQty[i].Mul(filled[i]))
		}
	}

	points := make([]PerformancePoint, 0, days)
	i := 0
	for on := range Days(from, today) {
		points = append(points, PerformancePoint{
			Date:     on,
			Invested: MoneyOf(invested[i]),
			Value:    MoneyOf(value[i]),
			Profit:   MoneyOf(value[i].Sub(invested[i])),
		})
		i++
	}
	return Performance{Points: points, Degraded: degraded}
}

// ResampleMonthly keeps the last point of each calendar month, the usual
// month-end summary view. The final, possibly partial, month keeps its last
// available day.
func (p Performance) ResampleMonthly() Performance {
	out := Performance{Degraded: p.Degraded}
	for i, pt := range p.Points {
		last := i == len(p.Points)-1
		if !last {
			next := p.Points[i+1].Date
			if next.Year() == pt.Date.Year() && next.Month() == pt.Date.Month() {
				continue
			}
		}
		out.Points = append(out.Points, pt)
	}
	return out
}
