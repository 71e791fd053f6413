// Package krx fetches Korean market data from the public Naver finance API
// and resolves KRX codes to security names. It is the live implementation
// of the famfolio Quotes and Namer collaborators.
package krx

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jdhyun/famfolio"
)

const (
	chartURL = "https://api.stock.naver.com/chart/domestic/item/%s/day?startDateTime=%s0000&endDateTime=%s0000"
	basicURL = "https://m.stock.naver.com/api/stock/%s/basic"
)

// Client talks to the Naver finance endpoints. The zero value is not
// usable, call New.
type Client struct {
	http *http.Client

	// endpoint templates, overridable in tests
	chartURL string
	basicURL string
}

// New returns a client whose responses are cached on disk until the end of
// the day, so repeated runs do not hammer the API.
func New() *Client {
	c := new(http.Client)
	c.Transport = &diskCache{base: http.DefaultTransport}
	return &Client{http: c, chartURL: chartURL, basicURL: basicURL}
}

// candlePayload mirrors one element of the daily chart response. Prices
// arrive as strings, sometimes with thousand separators.
type candlePayload struct {
	LocalDate  string `json:"localDate"` // "20240102"
	OpenPrice  string `json:"openPrice"`
	HighPrice  string `json:"highPrice"`
	LowPrice   string `json:"lowPrice"`
	ClosePrice string `json:"closePrice"`
}

// DailyPrices returns the trading-day candles of a KRX code in [from, to].
func (c *Client) DailyPrices(ticker string, from, to famfolio.Date) ([]famfolio.Candle, error) {
	addr := fmt.Sprintf(c.chartURL, ticker, from.Format("20060102"), to.Format("20060102"))
	var payload []candlePayload
	if err := jget(c.http, addr, &payload); err != nil {
		return nil, err
	}

	candles := make([]famfolio.Candle, 0, len(payload))
	for _, p := range payload {
		if len(p.LocalDate) != 8 {
			return nil, fmt.Errorf("bad date %q in chart payload for %s", p.LocalDate, ticker)
		}
		on, err := famfolio.ParseDate(p.LocalDate[:4] + "-" + p.LocalDate[4:6] + "-" + p.LocalDate[6:])
		if err != nil {
			return nil, fmt.Errorf("bad date %q in chart payload for %s: %w", p.LocalDate, ticker, err)
		}
		open, err := parsePrice(p.OpenPrice)
		if err != nil {
			return nil, fmt.Errorf("bad open in chart payload for %s: %w", ticker, err)
		}
		high, err := parsePrice(p.HighPrice)
		if err != nil {
			return nil, fmt.Errorf("bad high in chart payload for %s: %w", ticker, err)
		}
		low, err := parsePrice(p.LowPrice)
		if err != nil {
			return nil, fmt.Errorf("bad low in chart payload for %s: %w", ticker, err)
		}
		clos, err := parsePrice(p.ClosePrice)
		if err != nil {
			return nil, fmt.Errorf("bad close in chart payload for %s: %w", ticker, err)
		}
		candles = append(candles, famfolio.Candle{Date: on, Open: open, High: high, Low: low, Close: clos})
	}
	return candles, nil
}

// basicPayload mirrors the fields of the basic-info response we care about.
type basicPayload struct {
	StockName  string `json:"stockName"`
	ClosePrice string `json:"closePrice"`
}

// LatestClose returns the most recent close of a KRX code.
func (c *Client) LatestClose(ticker string) (famfolio.Money, error) {
	info, err := c.basic(ticker)
	if err != nil {
		return famfolio.Money{}, err
	}
	return parsePrice(info.ClosePrice)
}

func (c *Client) basic(ticker string) (basicPayload, error) {
	var payload basicPayload
	err := jget(c.http, fmt.Sprintf(c.basicURL, ticker), &payload)
	return payload, err
}

// parsePrice parses a price string such as "71,400" into won.
func parsePrice(s string) (famfolio.Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return famfolio.Money{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return famfolio.MoneyOf(v), nil
}

// jget performs an HTTP GET and unmarshals the JSON response into data.
func jget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}

// diskCache caches HTTP responses in the temp dir. The key embeds today's
// date, so entries expire at midnight and daily closes stay fresh.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("%s %s %s", famfolio.Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("krx-%x", sha1.Sum([]byte(key)))

	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0o644)
}

var _ famfolio.Quotes = (*Client)(nil)
