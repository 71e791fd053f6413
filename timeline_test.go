package famfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestTimelineSetAndAddAt(t *testing.T) {
	var tl Timeline
	tl.Set(date("2026-01-03"), d(3))
	tl.Set(date("2026-01-01"), d(1))
	tl.AddAt(date("2026-01-03"), d(4)) // same day accumulates
	tl.AddAt(date("2026-01-02"), d(2)) // new day inserts in order

	if tl.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tl.Len())
	}
	if v, ok := tl.Get(date("2026-01-03")); !ok || !v.Equal(d(7)) {
		t.Errorf("Get(2026-01-03) = %v, %v, want 7, true", v, ok)
	}

	// Points come back in chronological order regardless of insert order.
	var days []string
	for on := range tl.All() {
		days = append(days, on.String())
	}
	want := []string{"2026-01-01", "2026-01-02", "2026-01-03"}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("All()[%d] = %s, want %s", i, days[i], want[i])
		}
	}
}

func TestTimelineValueAsOf(t *testing.T) {
	var tl Timeline
	tl.Set(date("2026-01-02"), d(10))
	tl.Set(date("2026-01-05"), d(20))

	testCases := []struct {
		on     string
		want   int64
		wantOK bool
	}{
		{on: "2026-01-01", want: 0, wantOK: false},
		{on: "2026-01-02", want: 10, wantOK: true},
		{on: "2026-01-04", want: 10, wantOK: true},
		{on: "2026-01-09", want: 20, wantOK: true},
	}
	for _, tc := range testCases {
		v, ok := tl.ValueAsOf(date(tc.on))
		if ok != tc.wantOK || !v.Equal(d(tc.want)) {
			t.Errorf("ValueAsOf(%s) = %v, %v, want %d, %v", tc.on, v, ok, tc.want, tc.wantOK)
		}
	}
}

func TestTimelineCumSum(t *testing.T) {
	var tl Timeline
	tl.AddAt(date("2026-01-02"), d(5))
	tl.AddAt(date("2026-01-04"), d(-2))

	got := tl.CumSum(date("2026-01-01"), date("2026-01-05"))
	want := []int64{0, 5, 5, 3, 3}
	if len(got) != len(want) {
		t.Fatalf("CumSum returned %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(d(want[i])) {
			t.Errorf("CumSum[%d] = %v, want %d", i, got[i], want[i])
		}
	}
}

func TestTimelineForwardFill(t *testing.T) {
	var tl Timeline
	tl.Set(date("2026-01-02"), d(100)) // Friday close
	tl.Set(date("2026-01-05"), d(110)) // Monday close

	got := tl.ForwardFill(date("2026-01-01"), date("2026-01-06"))
	// Zero before the first close, the Friday close carries over the weekend.
	want := []int64{0, 100, 100, 100, 110, 110}
	if len(got) != len(want) {
		t.Fatalf("ForwardFill returned %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(d(want[i])) {
			t.Errorf("ForwardFill[%d] = %v, want %d", i, got[i], want[i])
		}
	}
}
