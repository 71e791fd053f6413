// Package cmd implements the CLI application to manage the family ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/jdhyun/famfolio"
	"github.com/jdhyun/famfolio/krx"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "ledger")
	c.Register(&sellCmd{}, "ledger")
	c.Register(&depositCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&recurringCmd{}, "automation")
	c.Register(&scanCmd{}, "automation")
	c.Register(&assistCmd{}, "automation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".famfolio", "Path to the ledger directory (CSV tables)")

// openStore opens the ledger store at the app data directory.
func openStore() (*famfolio.Store, error) {
	return famfolio.OpenStore(*dataDir)
}

// newQuotes returns the market-data cache for one command run, backed by the
// live KRX client.
func newQuotes() *famfolio.Cache {
	return famfolio.NewCache(krx.New())
}

// newNames returns the listing-name directory for one command run.
func newNames() *krx.Directory {
	return krx.NewDirectory(krx.New())
}

// scopeFlags is the owner/account/ticker filter triple shared by the
// reporting commands. Each flag takes a comma-separated list; empty means
// the whole family.
type scopeFlags struct {
	owners   string
	accounts string
	tickers  string
}

func (s *scopeFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&s.owners, "owner", "", "Restrict to these owners (comma-separated)")
	f.StringVar(&s.accounts, "account", "", "Restrict to these accounts (comma-separated)")
	f.StringVar(&s.tickers, "ticker", "", "Restrict to these tickers (comma-separated)")
}

func (s *scopeFlags) filter() famfolio.Filter {
	var scope famfolio.Filter
	scope.Owners = splitList(s.owners)
	scope.Accounts = splitList(s.accounts)
	for _, t := range splitList(s.tickers) {
		scope.Tickers = append(scope.Tickers, famfolio.NormalizeTicker(t))
	}
	return scope
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// takeSnapshot opens the store and runs one full computation pass, the
// shared body of the reporting commands.
func takeSnapshot(scope famfolio.Filter) (famfolio.Snapshot, error) {
	store, err := openStore()
	if err != nil {
		return famfolio.Snapshot{}, err
	}
	names := newNames()
	names.Preload(store.Tickers())
	return famfolio.TakeSnapshot(store, newQuotes(), names, scope), nil
}

// fail prints an error and returns the failure status, the common exit path
// of every command.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
