package famfolio

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeTransactions(t *testing.T) {
	in := strings.Join([]string{
		"id,owner,account,side,ticker,date,price,quantity,memo",
		"r1,me,isa,buy,5930.KS,2026-01-02,71000,1.5,first buy",
		"r2,me,isa,sell,005930,2026-01-10,72000,0.5,",
	}, "\n")

	txs, err := DecodeTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeTransactions failed: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d rows, want 2", len(txs))
	}
	got := txs[0]
	if got.ID != "r1" || got.Side != Buy || got.Ticker != "005930" || got.Memo != "first buy" {
		t.Errorf("row 1 = %+v", got)
	}
	if got.Date != date("2026-01-02") {
		t.Errorf("row 1 date = %v", got.Date)
	}
	wantMoney(t, "row 1 price", got.Price, 71000)
	if !got.Quantity.Equal(Q(1.5)) {
		t.Errorf("row 1 quantity = %v, want 1.5", got.Quantity)
	}
}

func TestDecodeTransactionsReportsLine(t *testing.T) {
	in := strings.Join([]string{
		"id,owner,account,side,ticker,date,price,quantity,memo",
		"r1,me,isa,buy,005930,2026-01-02,71000,1,",
		"r2,me,isa,hold,005930,2026-01-03,71000,1,",
	}, "\n")

	_, err := DecodeTransactions(strings.NewReader(in))
	if err == nil {
		t.Fatal("bad side accepted")
	}
	// Line numbers are file lines, counting the header.
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not point at line 3", err)
	}
}

func TestTransactionsRoundTrip(t *testing.T) {
	want := []Transaction{
		buyTx("me", "isa", "005930", "2026-01-02", 71000, 1.5),
		sellTx("spouse", "pension", "069500", "2026-01-10", 11500, 3),
	}
	want[0].Memo = "memo with, comma"

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, want); err != nil {
		t.Fatalf("EncodeTransactions failed: %v", err)
	}
	got, err := DecodeTransactions(&buf)
	if err != nil {
		t.Fatalf("DecodeTransactions failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Memo != want[i].Memo || got[i].Date != want[i].Date {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
		if !got[i].Price.Equal(want[i].Price) || !got[i].Quantity.Equal(want[i].Quantity) {
			t.Errorf("row %d price/qty = %v/%v, want %v/%v", i, got[i].Price, got[i].Quantity, want[i].Price, want[i].Quantity)
		}
	}
}

func TestDecodePlansEmptyLastApplied(t *testing.T) {
	in := strings.Join([]string{
		"id,owner,account,ticker,start,last_applied,cadence,quantity,memo",
		"p1,spouse,pension,367380,2026-01-01,,daily,2,",
		"p2,spouse,pension,367380,2026-01-01,2026-01-15,daily,2,",
	}, "\n")

	plans, err := DecodePlans(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodePlans failed: %v", err)
	}
	if !plans[0].LastApplied.IsZero() {
		t.Errorf("plan 1 LastApplied = %v, want zero (never run)", plans[0].LastApplied)
	}
	if plans[1].LastApplied != date("2026-01-15") {
		t.Errorf("plan 2 LastApplied = %v, want 2026-01-15", plans[1].LastApplied)
	}
}

func TestPlansRoundTripKeepsZeroCursor(t *testing.T) {
	want := []RecurringPlan{testPlan()}

	var buf bytes.Buffer
	if err := EncodePlans(&buf, want); err != nil {
		t.Fatalf("EncodePlans failed: %v", err)
	}
	got, err := DecodePlans(&buf)
	if err != nil {
		t.Fatalf("DecodePlans failed: %v", err)
	}
	if len(got) != 1 || !got[0].LastApplied.IsZero() || got[0].Start != want[0].Start {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestDecodeDeposits(t *testing.T) {
	in := strings.Join([]string{
		"id,owner,account,date,amount,memo",
		"d1,me,isa,2026-01-02,500000,bonus",
	}, "\n")

	deposits, err := DecodeDeposits(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeDeposits failed: %v", err)
	}
	if len(deposits) != 1 {
		t.Fatalf("got %d rows, want 1", len(deposits))
	}
	wantMoney(t, "amount", deposits[0].Amount, 500000)
	if deposits[0].Memo != "bonus" {
		t.Errorf("memo = %q, want bonus", deposits[0].Memo)
	}
}

func TestDecodeEmptyTable(t *testing.T) {
	txs, err := DecodeTransactions(strings.NewReader("id,owner,account,side,ticker,date,price,quantity,memo\n"))
	if err != nil {
		t.Fatalf("header-only table failed: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("got %d rows, want 0", len(txs))
	}
}
