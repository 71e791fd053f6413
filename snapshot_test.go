package famfolio

import (
	"strings"
	"testing"
)

// fixedNames resolves from a map, for tests.
type fixedNames map[string]string

func (n fixedNames) ResolveName(ticker string) string {
	if name, ok := n[ticker]; ok {
		return name
	}
	return "unknown security (" + ticker + ")"
}

func TestBuildHoldings(t *testing.T) {
	txs := []Transaction{
		buyTx("me", "isa", "005930", "2026-01-02", 1000, 10),
	}
	fake := newFakeQuotes()
	fake.setClose("005930", "2026-01-10", 1200)

	holdings := BuildHoldings(Aggregate(txs, Filter{}), NewCache(fake), fixedNames{"005930": "Samsung Electronics"})
	if len(holdings) != 1 {
		t.Fatalf("got %d holdings, want 1", len(holdings))
	}
	h := holdings[0]
	if h.Name != "Samsung Electronics" {
		t.Errorf("Name = %q", h.Name)
	}
	wantMoney(t, "Current", h.Current, 1200)
	wantMoney(t, "Value", h.Value, 12000)
	if h.ReturnPct != 20 {
		t.Errorf("ReturnPct = %v, want 20", h.ReturnPct)
	}
}

func TestTakeSnapshot(t *testing.T) {
	s, _ := openTestStore(t)
	if err := s.AppendDeposits(NewDeposit("me", "isa", date("2026-01-02"), Won(50000), "")); err != nil {
		t.Fatalf("AppendDeposits failed: %v", err)
	}
	if err := s.AppendTransactions(buyTx("me", "isa", "005930", "2026-01-03", 1000, 10)); err != nil {
		t.Fatalf("AppendTransactions failed: %v", err)
	}
	fake := newFakeQuotes()
	fake.setClose("005930", "2026-01-10", 1200)

	snap := TakeSnapshot(s, NewCache(fake), fixedNames{"005930": "Samsung Electronics"}, Filter{})
	if len(snap.Summaries) != 1 || len(snap.Holdings) != 1 {
		t.Fatalf("snapshot has %d summaries, %d holdings, want 1 and 1", len(snap.Summaries), len(snap.Holdings))
	}
	wantMoney(t, "TotalAssets", snap.TotalAssets(), 52000)
	if len(snap.Degraded) != 0 {
		t.Errorf("Degraded = %v, want none", snap.Degraded)
	}

	md := snap.Markdown()
	for _, want := range []string{"## Accounts", "## Holdings", "Samsung Electronics"} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q", want)
		}
	}
}

func TestSnapshotMarkdownMentionsDegraded(t *testing.T) {
	snap := Snapshot{
		Date:     date("2026-01-10"),
		Degraded: []TickerError{{Ticker: "999999", Err: errFake}},
	}
	if !strings.Contains(snap.Markdown(), "999999") {
		t.Error("Markdown() does not mention the degraded ticker")
	}
}
