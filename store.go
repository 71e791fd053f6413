package famfolio

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
)

// Table file names inside the store directory.
const (
	TransactionsFile = "transactions.csv"
	DepositsFile     = "deposits.csv"
	RecurringFile    = "recurring.csv"
)

// Store holds the three ledger tables in memory and mirrors every mutation
// back to CSV files in its directory. The tables are append-only: an edit
// is a full-row replace, never an in-place field change.
//
// A single active session is assumed. Two processes writing the same
// directory race with last-write-wins on the files.
type Store struct {
	dir string

	txs      []Transaction
	deposits []Deposit
	plans    []RecurringPlan
}

// OpenStore loads the ledger from dir, creating the directory and the
// tables on first run. A fresh recurring table is seeded with one example
// plan, the template users copy from.
func OpenStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	s := &Store{dir: dir}
	if err := s.ensureFiles(); err != nil {
		return nil, err
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureFiles() error {
	if _, err := os.Stat(s.path(TransactionsFile)); os.IsNotExist(err) {
		if err := s.saveTransactions(nil); err != nil {
			return err
		}
	}
	if _, err := os.Stat(s.path(DepositsFile)); os.IsNotExist(err) {
		if err := s.saveDeposits(nil); err != nil {
			return err
		}
	}
	if _, err := os.Stat(s.path(RecurringFile)); os.IsNotExist(err) {
		log.Printf("store: seeding %s with an example plan", RecurringFile)
		seed := RecurringPlan{
			ID:       "example",
			Owner:    "spouse",
			Account:  "pension",
			Ticker:   "367380",
			Start:    Today(),
			Cadence:  DailyTrading,
			Quantity: Q(1),
			Memo:     "pension auto-accumulation",
		}
		if err := s.savePlans([]RecurringPlan{seed}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path(TransactionsFile))
	if err != nil {
		return err
	}
	if s.txs, err = DecodeTransactions(bytes.NewReader(data)); err != nil {
		return err
	}
	data, err = os.ReadFile(s.path(DepositsFile))
	if err != nil {
		return err
	}
	if s.deposits, err = DecodeDeposits(bytes.NewReader(data)); err != nil {
		return err
	}
	data, err = os.ReadFile(s.path(RecurringFile))
	if err != nil {
		return err
	}
	if s.plans, err = DecodePlans(bytes.NewReader(data)); err != nil {
		return err
	}
	return nil
}

// Transactions returns a copy of all transaction rows, in file order.
func (s *Store) Transactions() []Transaction { return slices.Clone(s.txs) }

// Deposits returns a copy of all deposit rows, in file order.
func (s *Store) Deposits() []Deposit { return slices.Clone(s.deposits) }

// Plans returns a copy of all recurring plans, in file order.
func (s *Store) Plans() []RecurringPlan { return slices.Clone(s.plans) }

// Tickers returns the distinct tickers appearing in the transactions table.
func (s *Store) Tickers() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range s.txs {
		if _, ok := seen[t.Ticker]; !ok {
			seen[t.Ticker] = struct{}{}
			out = append(out, t.Ticker)
		}
	}
	slices.Sort(out)
	return out
}

// AppendTransactions validates and appends rows, then persists the table.
func (s *Store) AppendTransactions(txs ...Transaction) error {
	for _, t := range txs {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("invalid transaction: %w", err)
		}
	}
	next := append(slices.Clone(s.txs), txs...)
	if err := s.saveTransactions(next); err != nil {
		return err
	}
	s.txs = next
	log.Printf("store: appended %d transaction(s)", len(txs))
	return nil
}

// AppendDeposits validates and appends rows, then persists the table.
func (s *Store) AppendDeposits(deposits ...Deposit) error {
	for _, d := range deposits {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("invalid deposit: %w", err)
		}
	}
	next := append(slices.Clone(s.deposits), deposits...)
	if err := s.saveDeposits(next); err != nil {
		return err
	}
	s.deposits = next
	log.Printf("store: appended %d deposit(s)", len(deposits))
	return nil
}

// ReplaceTransactions swaps the whole table, the edit model for rows
// changed in a spreadsheet.
func (s *Store) ReplaceTransactions(txs []Transaction) error {
	if err := s.saveTransactions(txs); err != nil {
		return err
	}
	s.txs = slices.Clone(txs)
	return nil
}

// ReplaceDeposits swaps the whole table.
func (s *Store) ReplaceDeposits(deposits []Deposit) error {
	if err := s.saveDeposits(deposits); err != nil {
		return err
	}
	s.deposits = slices.Clone(deposits)
	return nil
}

// ReplacePlans swaps the whole table, used after a recurring-buy run
// advanced the cursors.
func (s *Store) ReplacePlans(plans []RecurringPlan) error {
	if err := s.savePlans(plans); err != nil {
		return err
	}
	s.plans = slices.Clone(plans)
	return nil
}

func (s *Store) saveTransactions(txs []Transaction) error {
	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, txs); err != nil {
		return err
	}
	return s.writeAtomic(TransactionsFile, buf.Bytes())
}

func (s *Store) saveDeposits(deposits []Deposit) error {
	var buf bytes.Buffer
	if err := EncodeDeposits(&buf, deposits); err != nil {
		return err
	}
	return s.writeAtomic(DepositsFile, buf.Bytes())
}

func (s *Store) savePlans(plans []RecurringPlan) error {
	var buf bytes.Buffer
	if err := EncodePlans(&buf, plans); err != nil {
		return err
	}
	return s.writeAtomic(RecurringFile, buf.Bytes())
}

// writeAtomic writes through a temp file and renames it over the table, so
// a crash mid-write never leaves a truncated ledger behind.
func (s *Store) writeAtomic(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, "tmp-*.csv")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, s.path(name))
}

func (s *Store) path(name string) string { return filepath.Join(s.dir, name) }
