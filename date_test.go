package famfolio

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-02-01", want: NewDate(2026, time.February, 1)},
		{in: "2026-2-1", want: NewDate(2026, time.February, 1)},
		{in: " 2026-02-01 ", want: NewDate(2026, time.February, 1)},
		{in: "2026/02/01", wantErr: true},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	// Comparisons are by calendar day, never by string: the permissive
	// format "2026-9-2" must still order before "2026-10-01".
	early := MustParseDate("2026-9-2")
	late := MustParseDate("2026-10-01")
	if !early.Before(late) {
		t.Errorf("%v should be before %v", early, late)
	}
	if !late.After(early) {
		t.Errorf("%v should be after %v", late, early)
	}
}

func TestDateAddNormalizes(t *testing.T) {
	got := MustParseDate("2026-01-31").Add(1)
	if want := MustParseDate("2026-02-01"); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
	got = MustParseDate("2026-03-01").Add(-1)
	if want := MustParseDate("2026-02-28"); got != want {
		t.Errorf("Add(-1) = %v, want %v", got, want)
	}
}

func TestEndOfMonth(t *testing.T) {
	testCases := []struct{ in, want string }{
		{"2026-02-10", "2026-02-28"},
		{"2024-02-10", "2024-02-29"},
		{"2026-12-01", "2026-12-31"},
	}
	for _, tc := range testCases {
		if got := MustParseDate(tc.in).EndOfMonth(); got != MustParseDate(tc.want) {
			t.Errorf("EndOfMonth(%s) = %v, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDays(t *testing.T) {
	var got []string
	for on := range Days(MustParseDate("2026-02-27"), MustParseDate("2026-03-02")) {
		got = append(got, on.String())
	}
	want := []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}
	if len(got) != len(want) {
		t.Fatalf("Days yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Days[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestZeroDateString(t *testing.T) {
	var zero Date
	if zero.String() != "" {
		t.Errorf("zero date String() = %q, want empty", zero.String())
	}
	if !zero.IsZero() {
		t.Error("zero date IsZero() = false")
	}
}
