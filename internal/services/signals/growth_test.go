package signals

import (
	"testing"
	"time"

	"SectorScope/internal/domain/models"
)

func monthly(start time.Time, values ...float64) models.Series {
	s := make(models.Series, len(values))
	for i, v := range values {
		s[i] = models.Observation{Date: start.AddDate(0, i, 0), Value: v}
	}
	return s
}

func TestEmploymentGrowthYearOverYear(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	values := make([]float64, 13)
	for i := range values {
		values[i] = 100
	}
	values[12] = 110

	got := EmploymentGrowth(map[string]models.Series{
		"Tech": monthly(start, values...),
	})
	if !almostEqual(got["Tech"], 10) {
		t.Fatalf("expected 10, got %v", got["Tech"])
	}
}

func TestEmploymentGrowthShortSeriesUsesEarliest(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	got := EmploymentGrowth(map[string]models.Series{
		"Young": monthly(start, 100, 102, 104, 105),
	})
	if !almostEqual(got["Young"], 5) {
		t.Fatalf("expected 5, got %v", got["Young"])
	}
}

func TestEmploymentGrowthSkipsNonPositiveBaseline(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	got := EmploymentGrowth(map[string]models.Series{
		"Zero": monthly(start, 0, 10, 20),
	})
	if _, ok := got["Zero"]; ok {
		t.Fatalf("expected exclusion, got %v", got)
	}
}

func TestGrowthScores(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sectors := []string{"Fast", "Slow", "Silent"}
	employment := map[string]models.Series{
		// growth 10 and 2: z-scores +-1
		"Fast": monthly(start, 100, 110),
		"Slow": monthly(start, 100, 102),
	}

	got := GrowthScores(sectors, employment)
	if !almostEqual(got["Fast"], 65) || !almostEqual(got["Slow"], 35) {
		t.Fatalf("unexpected scores %v", got)
	}
	if got["Silent"] != NeutralScore {
		t.Fatalf("expected neutral for Silent, got %v", got["Silent"])
	}
}

func TestGrowthScoresNoData(t *testing.T) {
	got := GrowthScores([]string{"A"}, nil)
	if got["A"] != NeutralScore {
		t.Fatalf("expected neutral, got %v", got["A"])
	}
}
