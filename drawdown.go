package famfolio

import "log"

// Signal classifies a drawdown into an action tier.
type Signal string

const (
	StrongBuy  Signal = "strong-buy"  // down 10% or more from the window high
	PartialBuy Signal = "partial-buy" // down 5% or more
	Breakout   Signal = "breakout"    // at or above the window high
	Neutral    Signal = "neutral"
)

// classify maps a drawdown percentage to its tier. Thresholds are fixed.
func classify(drawdownPct float64) Signal {
	switch {
	case drawdownPct <= -10:
		return StrongBuy
	case drawdownPct <= -5:
		return PartialBuy
	case drawdownPct >= 0:
		return Breakout
	default:
		return Neutral
	}
}

// Drawdown is the scan result for one watched ticker.
type Drawdown struct {
	Ticker      string
	WindowHigh  Money
	Current     Money
	DrawdownPct float64
	Signal      Signal
}

// DefaultDrawdownWindow is the trailing window of the scanner, in days.
const DefaultDrawdownWindow = 30

// ScanDrawdowns computes, for each watched ticker, the trailing-window high
// close, the current price, and the percent drawdown between them. A ticker
// whose data cannot be fetched is skipped and the partial result is still
// returned.
//
// The drawdown is usually at most zero; the current price can exceed the
// recorded window high when the latest quote is fresher than the last daily
// close, which reads as a breakout.
func ScanDrawdowns(watchlist []string, windowDays int, quotes Quotes, today Date) []Drawdown {
	if windowDays <= 0 {
		windowDays = DefaultDrawdownWindow
	}
	from := today.Add(-windowDays)

	var out []Drawdown
	for _, raw := range watchlist {
		ticker := NormalizeTicker(raw)

		candles, err := quotes.DailyPrices(ticker, from, today)
		if err != nil || len(candles) == 0 {
			log.Printf("scan: skipping %s: no window data (%v)", ticker, err)
			continue
		}
		current, err := quotes.LatestClose(ticker)
		if err != nil {
			log.Printf("scan: skipping %s: %v", ticker, err)
			continue
		}

		high := candles[0].Close
		for _, c := range candles[1:] {
			if c.Close.GreaterThan(high) {
				high = c.Close
			}
		}
		if !high.IsPositive() {
			continue
		}

		pct := current.Sub(high).Float64() / high.Float64() * 100
		out = append(out, Drawdown{
			Ticker:      ticker,
			WindowHigh:  high,
			Current:     current,
			DrawdownPct: pct,
			Signal:      classify(pct),
		})
	}
	return out
}
