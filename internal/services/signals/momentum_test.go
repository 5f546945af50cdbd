package signals

import (
	"math"
	"testing"
	"time"

	"SectorScope/internal/domain/models"
)

func history(closes, volumes []float64) models.PriceHistory {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	h := make(models.PriceHistory, len(closes))
	for i := range closes {
		vol := 100.0
		if volumes != nil {
			vol = volumes[i]
		}
		h[i] = models.Bar{Date: day.AddDate(0, 0, i), Close: closes[i], Volume: vol}
	}
	return h
}

func flatThenJump(n int, base, last float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = base
	}
	closes[n-1] = last
	return closes
}

func TestPriceReturnsAllHorizons(t *testing.T) {
	prices := map[string]models.PriceHistory{
		"Tech": history(flatThenJump(300, 100, 110), nil),
	}

	got := PriceReturns(prices)
	horizons, ok := got["Tech"]
	if !ok {
		t.Fatalf("expected Tech horizons")
	}
	for _, months := range MomentumMonths {
		if v, ok := horizons[months]; !ok || !almostEqual(v, 10) {
			t.Fatalf("horizon %d: got %v (present=%v)", months, v, ok)
		}
	}
}

func TestPriceReturnsSkipsShortHistory(t *testing.T) {
	prices := map[string]models.PriceHistory{
		"Thin": history(flatThenJump(10, 100, 110), nil),
	}
	if got := PriceReturns(prices); len(got) != 0 {
		t.Fatalf("expected no returns, got %v", got)
	}
}

func TestPriceReturnsPartialHorizons(t *testing.T) {
	// 100 bars: enough for 3 months (63 bars) only
	prices := map[string]models.PriceHistory{
		"Mid": history(flatThenJump(100, 100, 105), nil),
	}
	horizons := PriceReturns(prices)["Mid"]
	if _, ok := horizons[3]; !ok {
		t.Fatalf("expected 3mo horizon")
	}
	if _, ok := horizons[6]; ok {
		t.Fatalf("did not expect 6mo horizon")
	}
	if _, ok := horizons[12]; ok {
		t.Fatalf("did not expect 12mo horizon")
	}
}

func TestRelativeStrengthRequiresBenchmarkHistory(t *testing.T) {
	prices := map[string]models.PriceHistory{
		"Tech": history(flatThenJump(300, 100, 110), nil),
	}
	short := history(flatThenJump(100, 100, 100), nil)
	if got := RelativeStrength(prices, short); len(got) != 0 {
		t.Fatalf("expected empty map with short benchmark, got %v", got)
	}
}

func TestRelativeStrengthVersusBenchmark(t *testing.T) {
	prices := map[string]models.PriceHistory{
		"Tech": history(flatThenJump(300, 100, 110), nil),
		"Thin": history(flatThenJump(100, 100, 110), nil),
	}
	bench := history(flatThenJump(300, 100, 105), nil)

	got := RelativeStrength(prices, bench)
	if !almostEqual(got["Tech"], 5) {
		t.Fatalf("expected 5, got %v", got["Tech"])
	}
	if _, ok := got["Thin"]; ok {
		t.Fatalf("did not expect short sector history to qualify")
	}
}

func TestVolumeTrend(t *testing.T) {
	volumes := make([]float64, 300)
	for i := range volumes {
		volumes[i] = 100
	}
	for i := 280; i < 300; i++ {
		volumes[i] = 200
	}
	prices := map[string]models.PriceHistory{
		"Tech": history(flatThenJump(300, 100, 100), volumes),
	}

	got := VolumeTrend(prices)
	// short avg 200 vs long avg 140
	want := (200.0 - 140.0) / 140.0 * 100.0
	if math.Abs(got["Tech"]-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got["Tech"])
	}
}

func TestMomentumScoresOrderingAndNeutral(t *testing.T) {
	rising := make([]float64, 300)
	for i := range rising {
		rising[i] = 100 + float64(i)
	}
	flat := flatThenJump(300, 100, 100)

	sectors := []string{"Strong", "Weak", "Absent"}
	prices := map[string]models.PriceHistory{
		"Strong": history(rising, nil),
		"Weak":   history(flat, nil),
	}
	bench := history(flat, nil)

	got := MomentumScores(sectors, prices, bench)
	if got["Strong"] <= got["Weak"] {
		t.Fatalf("expected Strong > Weak, got %v", got)
	}
	if got["Absent"] != NeutralScore {
		t.Fatalf("expected neutral for Absent, got %v", got["Absent"])
	}
	for s, v := range got {
		if v < 0 || v > 100 {
			t.Fatalf("score out of range for %s: %v", s, v)
		}
	}
}
