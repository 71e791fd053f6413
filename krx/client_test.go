package krx

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jdhyun/famfolio"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "71400", want: 71400},
		{in: "71,400", want: 71400},
		{in: " 1,234 ", want: 1234},
		{in: "", wantErr: true},
		{in: "n/a", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := parsePrice(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parsePrice(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePrice(%q) failed: %v", tc.in, err)
			continue
		}
		if !got.Equal(famfolio.Won(tc.want)) {
			t.Errorf("parsePrice(%q) = %v, want %d won", tc.in, got, tc.want)
		}
	}
}

// testClient serves canned JSON from a local server instead of the real API.
func testClient(t *testing.T, chartBody, basicBody string) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/chart/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartBody)
	})
	mux.HandleFunc("/basic/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, basicBody)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &Client{
		http:     srv.Client(),
		chartURL: srv.URL + "/chart/%s?start=%s&end=%s",
		basicURL: srv.URL + "/basic/%s",
	}
}

func TestDailyPrices(t *testing.T) {
	chart := `[
	  {"localDate":"20260102","openPrice":"70,000","highPrice":"72,000","lowPrice":"69,500","closePrice":"71,400"},
	  {"localDate":"20260105","openPrice":"71,400","highPrice":"71,900","lowPrice":"71,000","closePrice":"71,900"}
	]`
	c := testClient(t, chart, "{}")

	candles, err := c.DailyPrices("005930", famfolio.MustParseDate("2026-01-01"), famfolio.MustParseDate("2026-01-06"))
	if err != nil {
		t.Fatalf("DailyPrices failed: %v", err)
	}
	if len(candles) != 2 {
		t.Fatalf("got %d candles, want 2", len(candles))
	}
	first := candles[0]
	if first.Date != famfolio.MustParseDate("2026-01-02") {
		t.Errorf("candle date = %v, want 2026-01-02", first.Date)
	}
	if !first.Close.Equal(famfolio.Won(71400)) {
		t.Errorf("close = %v, want 71,400 won", first.Close)
	}
	if !first.High.Equal(famfolio.Won(72000)) {
		t.Errorf("high = %v, want 72,000 won", first.High)
	}
}

func TestDailyPricesBadPayload(t *testing.T) {
	c := testClient(t, `[{"localDate":"20260102","closePrice":"oops"}]`, "{}")
	if _, err := c.DailyPrices("005930", famfolio.MustParseDate("2026-01-01"), famfolio.MustParseDate("2026-01-06")); err == nil {
		t.Fatal("malformed payload accepted")
	}
}

func TestLatestClose(t *testing.T) {
	c := testClient(t, "[]", `{"stockName":"삼성전자","closePrice":"71,400"}`)
	price, err := c.LatestClose("005930")
	if err != nil {
		t.Fatalf("LatestClose failed: %v", err)
	}
	if !price.Equal(famfolio.Won(71400)) {
		t.Errorf("LatestClose = %v, want 71,400 won", price)
	}
}

func TestDirectory(t *testing.T) {
	c := testClient(t, "[]", `{"stockName":"삼성전자","closePrice":"71,400"}`)
	dir := NewDirectory(c)

	if got := dir.ResolveName("005930"); got != "삼성전자" {
		t.Errorf("ResolveName = %q, want 삼성전자", got)
	}
	// Cached: the name survives even if the server goes away.
	if got := dir.ResolveName("005930"); got != "삼성전자" {
		t.Errorf("cached ResolveName = %q, want 삼성전자", got)
	}
}

func TestDirectoryFallback(t *testing.T) {
	c := testClient(t, "[]", `{}`)
	dir := NewDirectory(c)
	if got := dir.ResolveName("999999"); got != "unknown security (999999)" {
		t.Errorf("ResolveName = %q, want the placeholder", got)
	}
}
