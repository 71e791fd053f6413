package famfolio

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Side tells whether a transaction bought or sold shares.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses a side as persisted in the transactions table.
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction side: %q", s)
	}
}

// Cadence is the tick frequency of a recurring plan. There is a single
// cadence today; the enum keeps the recurring table forward-compatible.
type Cadence string

// DailyTrading ticks once per trading day.
const DailyTrading Cadence = "daily"

// ParseCadence parses a cadence as persisted in the recurring table.
func ParseCadence(s string) (Cadence, error) {
	switch Cadence(strings.ToLower(strings.TrimSpace(s))) {
	case DailyTrading:
		return DailyTrading, nil
	default:
		return "", fmt.Errorf("unknown cadence: %q", s)
	}
}

// NormalizeTicker turns user or spreadsheet input into the canonical
// 6-character zero-padded KRX code: "5930", "005930.KS" and "5930.0" all
// become "005930".
func NormalizeTicker(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	for len(s) < 6 {
		s = "0" + s
	}
	return s
}

// Transaction is one buy or sell row of the ledger. Rows are immutable once
// appended; an edit is modeled as a full-row replace keyed by ID.
type Transaction struct {
	ID       string
	Owner    string
	Account  string
	Side     Side
	Ticker   string
	Date     Date
	Price    Money // unit price in won
	Quantity Quantity
	Memo     string
}

// NewTransaction creates a transaction with a fresh row ID and a normalized
// ticker.
func NewTransaction(owner, account string, side Side, ticker string, on Date, price Money, qty Quantity, memo string) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Owner:    owner,
		Account:  account,
		Side:     side,
		Ticker:   NormalizeTicker(ticker),
		Date:     on,
		Price:    price,
		Quantity: qty,
		Memo:     memo,
	}
}

// Cost is the unsigned total of the row: price times quantity.
func (t Transaction) Cost() Money { return t.Price.Mul(t.Quantity) }

// CashFlow is the signed effect of the row on the account's cash: a buy
// drains cash, a sell returns it.
func (t Transaction) CashFlow() Money {
	if t.Side == Buy {
		return t.Cost().Neg()
	}
	return t.Cost()
}

// Validate rejects rows that must not reach the ledger.
func (t Transaction) Validate() error {
	var errs error
	if t.Owner == "" {
		errs = errors.Join(errs, errors.New("owner is required"))
	}
	if t.Account == "" {
		errs = errors.Join(errs, errors.New("account is required"))
	}
	if t.Ticker == "" || t.Ticker == "000000" {
		errs = errors.Join(errs, errors.New("ticker is required"))
	}
	if t.Side != Buy && t.Side != Sell {
		errs = errors.Join(errs, fmt.Errorf("invalid side %q", t.Side))
	}
	if t.Date.IsZero() {
		errs = errors.Join(errs, errors.New("date is required"))
	}
	if t.Price.IsNegative() {
		errs = errors.Join(errs, errors.New("unit price cannot be negative"))
	}
	if !t.Quantity.IsPositive() {
		errs = errors.Join(errs, errors.New("quantity must be positive"))
	}
	return errs
}

// Deposit is one cash deposit row.
type Deposit struct {
	ID      string
	Owner   string
	Account string
	Date    Date
	Amount  Money
	Memo    string
}

// NewDeposit creates a deposit with a fresh row ID.
func NewDeposit(owner, account string, on Date, amount Money, memo string) Deposit {
	return Deposit{ID: uuid.NewString(), Owner: owner, Account: account, Date: on, Amount: amount, Memo: memo}
}

// Validate rejects rows that must not reach the ledger.
func (d Deposit) Validate() error {
	var errs error
	if d.Owner == "" {
		errs = errors.Join(errs, errors.New("owner is required"))
	}
	if d.Account == "" {
		errs = errors.Join(errs, errors.New("account is required"))
	}
	if d.Date.IsZero() {
		errs = errors.Join(errs, errors.New("date is required"))
	}
	if !d.Amount.IsPositive() {
		errs = errors.Join(errs, errors.New("amount must be positive"))
	}
	return errs
}

// RecurringPlan is one recurring-buy plan row. LastApplied is a cursor that
// only moves forward; the zero date means the plan has never run.
type RecurringPlan struct {
	ID          string
	Owner       string
	Account     string
	Ticker      string
	Start       Date
	LastApplied Date
	Cadence     Cadence
	Quantity    Quantity // shares bought per tick
	Memo        string
}

// Cursor is the date the plan is caught up to: the last applied date once
// set, the start date otherwise.
func (p RecurringPlan) Cursor() Date {
	if p.LastApplied.IsZero() {
		return p.Start
	}
	return p.LastApplied
}

// Validate rejects plans that must not reach the ledger.
func (p RecurringPlan) Validate() error {
	var errs error
	if p.Owner == "" || p.Account == "" {
		errs = errors.Join(errs, errors.New("owner and account are required"))
	}
	if p.Ticker == "" || p.Ticker == "000000" {
		errs = errors.Join(errs, errors.New("ticker is required"))
	}
	if p.Start.IsZero() {
		errs = errors.Join(errs, errors.New("start date is required"))
	}
	if !p.LastApplied.IsZero() && p.LastApplied.Before(p.Start) {
		errs = errors.Join(errs, errors.New("last applied date cannot precede the start date"))
	}
	if p.Cadence != DailyTrading {
		errs = errors.Join(errs, fmt.Errorf("invalid cadence %q", p.Cadence))
	}
	if !p.Quantity.IsPositive() {
		errs = errors.Join(errs, errors.New("quantity per tick must be positive"))
	}
	return errs
}

// Filter selects a subset of the ledger by owners, accounts and tickers.
// An empty slice means "all".
type Filter struct {
	Owners   []string
	Accounts []string
	Tickers  []string
}

func contains(set []string, s string) bool {
	if len(set) == 0 {
		return true
	}
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// MatchTransaction reports whether the row is in scope.
func (f Filter) MatchTransaction(t Transaction) bool {
	return contains(f.Owners, t.Owner) && contains(f.Accounts, t.Account) && contains(f.Tickers, t.Ticker)
}

// MatchDeposit reports whether the row is in scope.
func (f Filter) MatchDeposit(d Deposit) bool {
	return contains(f.Owners, d.Owner) && contains(f.Accounts, d.Account)
}

// SortForReplay orders transactions by ascending date, preserving the
// relative order of same-day rows.
func SortForReplay(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })
}

// SortForDisplay orders transactions by descending date, most recent first.
func SortForDisplay(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })
}

// SortDepositsForReplay orders deposits by ascending date, preserving the
// relative order of same-day rows.
func SortDepositsForReplay(deposits []Deposit) {
	sort.SliceStable(deposits, func(i, j int) bool { return deposits[i].Date.Before(deposits[j].Date) })
}
