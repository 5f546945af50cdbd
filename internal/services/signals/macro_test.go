package signals

import (
	"testing"
	"time"

	"SectorScope/internal/domain/models"
)

func monthEndBars(start time.Time, closes ...float64) models.PriceHistory {
	h := make(models.PriceHistory, len(closes))
	for i, c := range closes {
		h[i] = models.Bar{Date: start.AddDate(0, i, 0), Close: c, Volume: 100}
	}
	return h
}

func TestPearson(t *testing.T) {
	if corr, ok := pearson([]float64{1, 2, 3}, []float64{2, 4, 6}); !ok || !almostEqual(corr, 1) {
		t.Fatalf("expected 1, got %v ok=%v", corr, ok)
	}
	if corr, ok := pearson([]float64{1, 2, 3}, []float64{-2, -4, -6}); !ok || !almostEqual(corr, -1) {
		t.Fatalf("expected -1, got %v ok=%v", corr, ok)
	}
	if _, ok := pearson([]float64{1, 1, 1}, []float64{2, 4, 6}); ok {
		t.Fatalf("expected undefined correlation for zero variance")
	}
}

func TestMonthlyChangesConsecutiveMonths(t *testing.T) {
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	obs := []datedValue{
		{date: jan, value: 100},
		{date: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), value: 110},
		{date: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), value: 121},
		{date: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), value: 133.1},
	}

	changes := monthlyChanges(obs)
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %v", changes)
	}
	for m, v := range changes {
		if !almostEqual(v, 0.1) {
			t.Fatalf("month %d: expected 0.1, got %v", m, v)
		}
	}
}

func TestMonthlyChangesBreaksOnGap(t *testing.T) {
	obs := []datedValue{
		{date: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), value: 100},
		{date: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), value: 110},
	}
	if changes := monthlyChanges(obs); len(changes) != 0 {
		t.Fatalf("expected no changes across gap, got %v", changes)
	}
}

// zigRates builds n monthly observations alternating between two levels so
// the monthly changes flip sign every month.
func zigRates(start time.Time, n int) models.Series {
	rates := make(models.Series, n)
	for i := 0; i < n; i++ {
		v := 3.0
		if i%2 == 1 {
			v = 3.3
		}
		rates[i] = models.Observation{Date: start.AddDate(0, i, 0), Value: v}
	}
	return rates
}

func zigCloses(n int, lo, hi float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = lo
		if i%2 == 1 {
			closes[i] = hi
		}
	}
	return closes
}

func TestRateSensitivityRequiresOverlap(t *testing.T) {
	start := time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)
	n := 15
	rates := zigRates(start, n)

	prices := map[string]models.PriceHistory{
		// rises exactly when rates rise
		"Tracker": monthEndBars(start, zigCloses(n, 100, 110)...),
		"Thin":    monthEndBars(start, 100, 101, 102),
	}

	got := RateSensitivity(prices, rates)
	if corr, ok := got["Tracker"]; !ok || !almostEqual(corr, 1) {
		t.Fatalf("expected correlation 1, got %v ok=%v", corr, ok)
	}
	if _, ok := got["Thin"]; ok {
		t.Fatalf("expected Thin excluded for short overlap")
	}
}

func TestMacroScoresLowerCorrelationScoresHigher(t *testing.T) {
	start := time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)
	n := 15
	rates := zigRates(start, n)

	sectors := []string{"WithRates", "AgainstRates", "NoData"}
	prices := map[string]models.PriceHistory{
		// WithRates rises when rates rise, AgainstRates falls
		"WithRates":    monthEndBars(start, zigCloses(n, 100, 110)...),
		"AgainstRates": monthEndBars(start, zigCloses(n, 110, 100)...),
	}
	macro := map[string]models.Series{RateSeriesKey: rates}

	got := MacroScores(sectors, prices, macro)
	if got["AgainstRates"] <= got["WithRates"] {
		t.Fatalf("expected anti-correlated sector to score higher, got %v", got)
	}
	if got["NoData"] != NeutralScore {
		t.Fatalf("expected neutral for NoData, got %v", got["NoData"])
	}
}

func TestMacroScoresWithoutRates(t *testing.T) {
	got := MacroScores([]string{"A", "B"}, nil, nil)
	for s, v := range got {
		if v != NeutralScore {
			t.Fatalf("expected neutral for %s, got %v", s, v)
		}
	}
}
