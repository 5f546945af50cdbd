package providers

import (
	"math"
	"testing"
)

func TestParseMonthPeriod(t *testing.T) {
	cases := []struct {
		period string
		month  int
		ok     bool
	}{
		{"M01", 1, true},
		{"M12", 12, true},
		{"M13", 0, false}, // annual average
		{"Q01", 0, false},
		{"A01", 0, false},
		{"M", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		month, ok := parseMonthPeriod(tc.period)
		if ok != tc.ok || month != tc.month {
			t.Errorf("parseMonthPeriod(%q) = (%d, %v), want (%d, %v)", tc.period, month, ok, tc.month, tc.ok)
		}
	}
}

func TestParseRatio(t *testing.T) {
	cases := []struct {
		cell string
		want float64
		ok   bool
	}{
		{"0.125", 0.125, true},
		{"12.5%", 0.125, true},
		{" 3.40% ", 0.034, true},
		{"1,250", 1250, true},
		{"", 0, false},
		{"NA", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseRatio(tc.cell)
		if ok != tc.ok || math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("parseRatio(%q) = (%v, %v), want (%v, %v)", tc.cell, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLocateColumns(t *testing.T) {
	industry, ratio := locateColumns([]string{"Industry Name", "Number of firms", "R&D/Sales"})
	if industry != 0 || ratio != 2 {
		t.Errorf("expected (0, 2), got (%d, %d)", industry, ratio)
	}

	industry, ratio = locateColumns([]string{"Count", "Industry", "Margin", "R&D / Sales"})
	if industry != 1 || ratio != 3 {
		t.Errorf("expected (1, 3), got (%d, %d)", industry, ratio)
	}

	// unrecognized headers fall back to the historical layout
	industry, ratio = locateColumns([]string{"a", "b", "c"})
	if industry != 0 || ratio != 2 {
		t.Errorf("expected fallback (0, 2), got (%d, %d)", industry, ratio)
	}
}
