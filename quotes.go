package famfolio

import (
	"fmt"
	"log"
	"sort"
)

// Candle is one trading day of a security.
type Candle struct {
	Date  Date
	Open  Money
	High  Money
	Low   Money
	Close Money
}

// Quotes is the market-data collaborator. Both calls are fallible per call
// and return no partial result; callers degrade the affected value and move
// on, they never abort a whole batch on a single bad ticker.
type Quotes interface {
	// DailyPrices returns the trading-day candles in [from, to], in
	// chronological order. Non-trading days are simply absent.
	DailyPrices(ticker string, from, to Date) ([]Candle, error)
	// LatestClose returns the most recent close of the ticker.
	LatestClose(ticker string) (Money, error)
}

// Namer resolves a ticker to a display name.
type Namer interface {
	// ResolveName returns the display name of a ticker, or a placeholder
	// for securities it does not know.
	ResolveName(ticker string) string
}

// Cache wraps a Quotes provider and memoizes every call for the duration of
// one computation pass. A position and its time series both need the same
// ticker's data, so the pass stays at O(distinct tickers) provider calls.
//
// Failures are memoized too, so a flaky ticker is hit once per pass, and
// kept so callers can tell "zero because empty" from "zero because the
// fetch failed".
type Cache struct {
	src      Quotes
	daily    map[dailyKey]dailyResult
	latest   map[string]latestResult
	failures map[string]error
}

type dailyKey struct {
	ticker   string
	from, to Date
}

type dailyResult struct {
	candles []Candle
	err     error
}

type latestResult struct {
	price Money
	err   error
}

// NewCache creates a cache for one computation pass over src.
func NewCache(src Quotes) *Cache {
	return &Cache{
		src:      src,
		daily:    make(map[dailyKey]dailyResult),
		latest:   make(map[string]latestResult),
		failures: make(map[string]error),
	}
}

// DailyPrices memoizes Quotes.DailyPrices per (ticker, from, to).
func (c *Cache) DailyPrices(ticker string, from, to Date) ([]Candle, error) {
	key := dailyKey{ticker: ticker, from: from, to: to}
	if r, ok := c.daily[key]; ok {
		return r.candles, r.err
	}
	candles, err := c.src.DailyPrices(ticker, from, to)
	if err != nil {
		err = fmt.Errorf("daily prices for %s: %w", ticker, err)
		log.Printf("quote fetch failed: %v", err)
		c.failures[ticker] = err
	}
	c.daily[key] = dailyResult{candles: candles, err: err}
	return candles, err
}

// LatestClose memoizes Quotes.LatestClose per ticker.
func (c *Cache) LatestClose(ticker string) (Money, error) {
	if r, ok := c.latest[ticker]; ok {
		return r.price, r.err
	}
	price, err := c.src.LatestClose(ticker)
	if err != nil {
		err = fmt.Errorf("latest close for %s: %w", ticker, err)
		log.Printf("quote fetch failed: %v", err)
		c.failures[ticker] = err
	}
	c.latest[ticker] = latestResult{price: price, err: err}
	return price, err
}

// Failures returns the tickers that had at least one failed fetch during
// this pass, sorted, with the last error seen for each.
func (c *Cache) Failures() []TickerError {
	tickers := make([]string, 0, len(c.failures))
	for t := range c.failures {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	out := make([]TickerError, 0, len(tickers))
	for _, t := range tickers {
		out = append(out, TickerError{Ticker: t, Err: c.failures[t]})
	}
	return out
}

// TickerError records a degraded ticker and why its values read as zero.
type TickerError struct {
	Ticker string
	Err    error
}

func (e TickerError) Error() string { return e.Err.Error() }

var _ Quotes = (*Cache)(nil)
