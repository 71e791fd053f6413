package famfolio

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{in: Won(0), want: "₩0"},
		{in: Won(12000), want: "₩12,000"},
		{in: Won(-12000), want: "-₩12,000"},
		{in: Won(1234567890), want: "₩1,234,567,890"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String(%v won) = %q, want %q", tc.in.Float64(), got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := Won(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got := Won(500).SignedString(); got != "+₩500" {
		t.Errorf("SignedString(500) = %q, want +₩500", got)
	}
}

func TestMoneyDiv(t *testing.T) {
	wantMoney(t, "10000/4", Won(10000).Div(Q(4)), 2500)

	// 10,000 won over 3 shares: the value keeps its fraction, display
	// rounds it away.
	if got := Won(10000).Div(Q(3)).String(); got != "₩3,333" {
		t.Errorf("10000/3 displays as %q, want ₩3,333", got)
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("71000")
	if err != nil {
		t.Fatalf("ParseMoney failed: %v", err)
	}
	wantMoney(t, "ParseMoney", m, 71000)

	if _, err := ParseMoney("₩71,000"); err == nil {
		t.Error("decorated input accepted, the tables store bare numbers")
	}
}
