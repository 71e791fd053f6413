package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jdhyun/famfolio"
)

// --- Buy Command ---

type buyCmd struct {
	owner    string
	account  string
	ticker   string
	date     string
	price    string
	quantity string
	memo     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a share purchase in the ledger" }
func (*buyCmd) Usage() string {
	return `buy -o <owner> -a <account> -t <ticker> -q <quantity> -p <price> [-d <date>] [-m <memo>]

  Records a purchase of shares. The cost is debited from the account's cash.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "o", "", "Owner of the account")
	f.StringVar(&c.account, "a", "", "Account name")
	f.StringVar(&c.ticker, "t", "", "KRX ticker, e.g. 005930")
	f.StringVar(&c.date, "d", famfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.price, "p", "", "Price per share in won")
	f.StringVar(&c.quantity, "q", "", "Number of shares (fractions allowed)")
	f.StringVar(&c.memo, "m", "", "An optional note for the transaction")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTrade(famfolio.Buy, c.owner, c.account, c.ticker, c.date, c.price, c.quantity, c.memo, f)
}

// --- Sell Command ---

type sellCmd struct {
	owner    string
	account  string
	ticker   string
	date     string
	price    string
	quantity string
	memo     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a share sale in the ledger" }
func (*sellCmd) Usage() string {
	return `sell -o <owner> -a <account> -t <ticker> -q <quantity> -p <price> [-d <date>] [-m <memo>]

  Records a sale of shares. The proceeds are credited to the account's cash.
  The position's average cost is unchanged by a sale.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "o", "", "Owner of the account")
	f.StringVar(&c.account, "a", "", "Account name")
	f.StringVar(&c.ticker, "t", "", "KRX ticker, e.g. 005930")
	f.StringVar(&c.date, "d", famfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.price, "p", "", "Price per share in won")
	f.StringVar(&c.quantity, "q", "", "Number of shares (fractions allowed)")
	f.StringVar(&c.memo, "m", "", "An optional note for the transaction")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTrade(famfolio.Sell, c.owner, c.account, c.ticker, c.date, c.price, c.quantity, c.memo, f)
}

// recordTrade parses the shared buy/sell flags, builds the row and appends
// it to the store.
func recordTrade(side famfolio.Side, owner, account, ticker, dateStr, priceStr, qtyStr, memo string, f *flag.FlagSet) subcommands.ExitStatus {
	if owner == "" || account == "" || ticker == "" || priceStr == "" || qtyStr == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	on, err := famfolio.ParseDate(dateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := famfolio.ParseMoney(priceStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	qty, err := famfolio.ParseQuantity(qtyStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	tx := famfolio.NewTransaction(owner, account, side, ticker, on, price, qty, memo)
	if err := store.AppendTransactions(tx); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s x %s @ %s for %s/%s.\n", side, tx.Ticker, qty, price, owner, account)
	return subcommands.ExitSuccess
}

// --- Deposit Command ---

type depositCmd struct {
	owner   string
	account string
	date    string
	amount  string
	memo    string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a cash deposit into an account" }
func (*depositCmd) Usage() string {
	return `deposit -o <owner> -a <account> -v <amount> [-d <date>] [-m <memo>]

  Records cash moved into an account. Deposits are the denominator of the
  account's overall return.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "o", "", "Owner of the account")
	f.StringVar(&c.account, "a", "", "Account name")
	f.StringVar(&c.date, "d", famfolio.Today().String(), "Deposit date (YYYY-MM-DD)")
	f.StringVar(&c.amount, "v", "", "Amount in won")
	f.StringVar(&c.memo, "m", "", "An optional note for the deposit")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.owner == "" || c.account == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	on, err := famfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := famfolio.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	d := famfolio.NewDeposit(c.owner, c.account, on, amount, c.memo)
	if err := store.AppendDeposits(d); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded deposit of %s into %s/%s.\n", amount, c.owner, c.account)
	return subcommands.ExitSuccess
}
