package money

import "testing"

func TestParseCents(t *testing.T) {
	cases := []struct {
		in  string
		out Cents
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true},
		{"0.00", 0, true},
		{"10.00", 1000, true},
		{"1.005", 101, true}, // half-up rounding
		{"12.345", 1234, true},
		{"12.346", 1235, true},
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"12a.00", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestCentsString(t *testing.T) {
	cases := []struct {
		in  Cents
		out string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{100, "1.00"},
		{1234, "12.34"},
		{1000000, "10000.00"},
		{-250, "-2.50"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.out {
			t.Fatalf("%d expected %q, got %q", tc.in, tc.out, got)
		}
	}
}

func TestCentsFormat(t *testing.T) {
	if got := Cents(1550).Format(); got != "$15.50" {
		t.Fatalf("expected $15.50, got %q", got)
	}
	if got := Cents(-300).Format(); got != "-$3.00" {
		t.Fatalf("expected -$3.00, got %q", got)
	}
}

func TestParseCentsRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "1.00", "12.34", "999.99"} {
		c, err := ParseCents(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if c.String() != s {
			t.Fatalf("%q round-tripped to %q", s, c.String())
		}
	}
}
