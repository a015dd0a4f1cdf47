package money

import (
	"testing"
)

func TestParseAmount_PlainAndFormatted(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$150/month", 150},
		{"$2,999/year", 2999},
		{"$1,234.50/mo", 1234.5},
		{"300", 300},
		{"  $45.99 ", 45.99},
		{"$0.99", 0.99},
	}
	for _, c := range cases {
		if got := ParseAmount(c.in); got != c.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseAmount_NoNumber(t *testing.T) {
	for _, in := range []string{"contact us", "", "TBD", "$", "free!"} {
		if got := ParseAmount(in); got != 0 {
			t.Errorf("ParseAmount(%q) = %v, want 0", in, got)
		}
	}
}

func TestParseAmount_TrailingText(t *testing.T) {
	if got := ParseAmount("$99.95 per seat per month"); got != 99.95 {
		t.Errorf("got %v, want 99.95", got)
	}
	if got := ParseAmount("12.34.56"); got != 12.34 {
		t.Errorf("got %v, want 12.34 (second dot ends the number)", got)
	}
}

func TestSubtotal_SkipsUnparsable(t *testing.T) {
	got := Subtotal([]string{"$100", "contact us", "$200/month"})
	if got != 300 {
		t.Errorf("Subtotal = %v, want 300", got)
	}
}

func TestWithTax(t *testing.T) {
	got := WithTax(300, DefaultTaxRate)
	if got != 330 {
		t.Errorf("WithTax(300, 0.10) = %v, want 330", got)
	}
}

func TestFormat_WholeAmounts(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{330, "$330"},
		{1000, "$1,000"},
		{1234567, "$1,234,567"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormat_Cents(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.5, "$1,234.50"},
		{0.05, "$0.05"},
		{99.99, "$99.99"},
		{-45.5, "-$45.50"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.05, 330, 1234.5, 2999, 1234567.89} {
		if got := ParseAmount(Format(v)); got != v {
			t.Errorf("ParseAmount(Format(%v)) = %v", v, got)
		}
	}
}
