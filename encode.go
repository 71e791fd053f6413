package famfolio

import (
	"encoding/csv"
	"fmt"
	"io"
)

// The three ledger tables are plain CSV with a header row, so they stay
// hand-editable in any spreadsheet. Dates are ISO, money is whole won,
// quantities are decimals.

var (
	transactionHeader = []string{"id", "owner", "account", "side", "ticker", "date", "price", "quantity", "memo"}
	depositHeader     = []string{"id", "owner", "account", "date", "amount", "memo"}
	recurringHeader   = []string{"id", "owner", "account", "ticker", "start", "last_applied", "cadence", "quantity", "memo"}
)

// DecodeTransactions reads the transactions table from r.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	rows, err := readTable(r, len(transactionHeader))
	if err != nil {
		return nil, err
	}
	var out []Transaction
	for i, row := range rows {
		side, err := ParseSide(row[3])
		if err != nil {
			return nil, rowErr("transactions", i, err)
		}
		on, err := ParseDate(row[5])
		if err != nil {
			return nil, rowErr("transactions", i, err)
		}
		price, err := ParseMoney(row[6])
		if err != nil {
			return nil, rowErr("transactions", i, err)
		}
		qty, err := ParseQuantity(row[7])
		if err != nil {
			return nil, rowErr("transactions", i, err)
		}
		out = append(out, Transaction{
			ID:       row[0],
			Owner:    row[1],
			Account:  row[2],
			Side:     side,
			Ticker:   NormalizeTicker(row[4]),
			Date:     on,
			Price:    price,
			Quantity: qty,
			Memo:     row[8],
		})
	}
	return out, nil
}

// EncodeTransactions writes the transactions table to w.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionHeader); err != nil {
		return err
	}
	for _, t := range txs {
		row := []string{t.ID, t.Owner, t.Account, string(t.Side), t.Ticker, t.Date.String(), t.Price.csv(), t.Quantity.String(), t.Memo}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeDeposits reads the deposits table from r.
func DecodeDeposits(r io.Reader) ([]Deposit, error) {
	rows, err := readTable(r, len(depositHeader))
	if err != nil {
		return nil, err
	}
	var out []Deposit
	for i, row := range rows {
		on, err := ParseDate(row[3])
		if err != nil {
			return nil, rowErr("deposits", i, err)
		}
		amount, err := ParseMoney(row[4])
		if err != nil {
			return nil, rowErr("deposits", i, err)
		}
		out = append(out, Deposit{ID: row[0], Owner: row[1], Account: row[2], Date: on, Amount: amount, Memo: row[5]})
	}
	return out, nil
}

// EncodeDeposits writes the deposits table to w.
func EncodeDeposits(w io.Writer, deposits []Deposit) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(depositHeader); err != nil {
		return err
	}
	for _, d := range deposits {
		row := []string{d.ID, d.Owner, d.Account, d.Date.String(), d.Amount.csv(), d.Memo}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodePlans reads the recurring-plans table from r. An empty last_applied
// column is a plan that has never run.
func DecodePlans(r io.Reader) ([]RecurringPlan, error) {
	rows, err := readTable(r, len(recurringHeader))
	if err != nil {
		return nil, err
	}
	var out []RecurringPlan
	for i, row := range rows {
		start, err := ParseDate(row[4])
		if err != nil {
			return nil, rowErr("recurring", i, err)
		}
		var lastApplied Date
		if row[5] != "" {
			lastApplied, err = ParseDate(row[5])
			if err != nil {
				return nil, rowErr("recurring", i, err)
			}
		}
		cadence, err := ParseCadence(row[6])
		if err != nil {
			return nil, rowErr("recurring", i, err)
		}
		qty, err := ParseQuantity(row[7])
		if err != nil {
			return nil, rowErr("recurring", i, err)
		}
		out = append(out, RecurringPlan{
			ID:          row[0],
			Owner:       row[1],
			Account:     row[2],
			Ticker:      NormalizeTicker(row[3]),
			Start:       start,
			LastApplied: lastApplied,
			Cadence:     cadence,
			Quantity:    qty,
			Memo:        row[8],
		})
	}
	return out, nil
}

// EncodePlans writes the recurring-plans table to w.
func EncodePlans(w io.Writer, plans []RecurringPlan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recurringHeader); err != nil {
		return err
	}
	for _, p := range plans {
		row := []string{p.ID, p.Owner, p.Account, p.Ticker, p.Start.String(), p.LastApplied.String(), string(p.Cadence), p.Quantity.String(), p.Memo}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readTable reads all data rows, skipping the header, and checks the width.
func readTable(r io.Reader, width int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = width
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

func rowErr(table string, i int, err error) error {
	// i is zero-based over data rows; +2 accounts for the header and
	// one-based file lines.
	return fmt.Errorf("%s.csv line %d: %w", table, i+2, err)
}
