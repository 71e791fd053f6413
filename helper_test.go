package famfolio

import (
	"errors"
	"fmt"
	"testing"
)

var errFake = errors.New("fake failure")

// fakeQuotes is an in-memory Quotes provider for tests. It serves the
// configured candles filtered to the requested range, counts calls, and
// fails any ticker listed in errs.
type fakeQuotes struct {
	candles map[string][]Candle
	latest  map[string]Money
	errs    map[string]error

	dailyCalls  int
	latestCalls int
}

func newFakeQuotes() *fakeQuotes {
	return &fakeQuotes{
		candles: make(map[string][]Candle),
		latest:  make(map[string]Money),
		errs:    make(map[string]error),
	}
}

func (q *fakeQuotes) DailyPrices(ticker string, from, to Date) ([]Candle, error) {
	q.dailyCalls++
	if err, ok := q.errs[ticker]; ok {
		return nil, err
	}
	var out []Candle
	for _, c := range q.candles[ticker] {
		if !c.Date.Before(from) && !c.Date.After(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (q *fakeQuotes) LatestClose(ticker string) (Money, error) {
	q.latestCalls++
	if err, ok := q.errs[ticker]; ok {
		return Money{}, err
	}
	price, ok := q.latest[ticker]
	if !ok {
		return Money{}, fmt.Errorf("no latest close for %s", ticker)
	}
	return price, nil
}

// setClose records a close for a trading day and makes it the latest.
func (q *fakeQuotes) setClose(ticker, day string, close int64) {
	c := Candle{Date: date(day), Open: Won(close), High: Won(close), Low: Won(close), Close: Won(close)}
	q.candles[ticker] = append(q.candles[ticker], c)
	q.latest[ticker] = Won(close)
}

func date(s string) Date { return MustParseDate(s) }

func buyTx(owner, account, ticker, day string, price int64, qty float64) Transaction {
	return NewTransaction(owner, account, Buy, ticker, date(day), Won(price), Q(qty), "")
}

func sellTx(owner, account, ticker, day string, price int64, qty float64) Transaction {
	return NewTransaction(owner, account, Sell, ticker, date(day), Won(price), Q(qty), "")
}

// wantMoney fails the test unless got equals the wanted amount of won.
func wantMoney(t *testing.T, label string, got Money, want int64) {
	t.Helper()
	if !got.Equal(Won(want)) {
		t.Errorf("%s = %v, want %v", label, got, Won(want))
	}
}
