package krx

import (
	"fmt"
	"log"

	"github.com/jdhyun/famfolio"
)

// Directory resolves KRX codes to listing names, remembering every answer
// for the life of the process. Listings rarely rename, so there is no
// expiry.
type Directory struct {
	client *Client
	names  map[string]string
}

// NewDirectory returns a directory backed by the given client.
func NewDirectory(client *Client) *Directory {
	return &Directory{client: client, names: make(map[string]string)}
}

// ResolveName returns the listing name of a KRX code. When the lookup
// fails the code itself is returned in a readable placeholder, a report
// should never break because one name was unavailable.
func (d *Directory) ResolveName(ticker string) string {
	if name, ok := d.names[ticker]; ok {
		return name
	}
	info, err := d.client.basic(ticker)
	if err != nil || info.StockName == "" {
		log.Printf("krx: name lookup failed for %s: %v", ticker, err)
		return fmt.Sprintf("unknown security (%s)", ticker)
	}
	d.names[ticker] = info.StockName
	return info.StockName
}

// Preload warms the name cache for a set of tickers, typically the distinct
// tickers of the ledger before rendering a report.
func (d *Directory) Preload(tickers []string) {
	for _, t := range tickers {
		d.ResolveName(t)
	}
}

var _ famfolio.Namer = (*Directory)(nil)
