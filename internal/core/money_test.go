package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"500000", 50_000_000, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
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

func TestFromUnits(t *testing.T) {
	cases := []struct {
		in  float64
		out int64
	}{
		{1, 100},
		{0.01, 1},
		{500000, 50_000_000},
		{12.345, 1235}, // rounds half up
	}
	for _, tc := range cases {
		if got := FromUnits(tc.in); got.Cents != tc.out {
			t.Fatalf("FromUnits(%v) = %d, want %d", tc.in, got.Cents, tc.out)
		}
	}
}

func TestMoneyUnits(t *testing.T) {
	if got := (Money{Cents: 150_000_000_00}).Units(); got != 1_500_000_00.0 {
		t.Fatalf("Units = %v", got)
	}
	if got := (Money{Cents: 123}).Units(); got != 1.23 {
		t.Fatalf("Units = %v", got)
	}
}
