package signals

import (
	"testing"

	"SectorScope/internal/domain/models"
)

func fp(v float64) *float64 { return &v }

func TestValuationScoresLowerIsBetter(t *testing.T) {
	sectors := []string{"Cheap", "Dear", "Unknown"}
	pe := map[string]float64{"Cheap": 10, "Dear": 30}

	got := ValuationScores(sectors, pe, nil)
	if !almostEqual(got["Cheap"], 65) || !almostEqual(got["Dear"], 35) {
		t.Fatalf("unexpected scores %v", got)
	}
	if got["Unknown"] != NeutralScore {
		t.Fatalf("expected neutral for Unknown, got %v", got["Unknown"])
	}
}

func TestValuationScoresInfoFallback(t *testing.T) {
	sectors := []string{"Cheap", "Dear"}
	info := map[string]models.SectorInfo{
		"Cheap": {ForwardPE: fp(10)},
		"Dear":  {ForwardPE: fp(30)},
	}

	got := ValuationScores(sectors, nil, info)
	if !almostEqual(got["Cheap"], 65) || !almostEqual(got["Dear"], 35) {
		t.Fatalf("unexpected scores %v", got)
	}
}

func TestValuationScoresRejectsNonPositive(t *testing.T) {
	sectors := []string{"A", "B"}
	pe := map[string]float64{"A": -5, "B": 0}

	got := ValuationScores(sectors, pe, nil)
	for s, v := range got {
		if v != NeutralScore {
			t.Fatalf("expected neutral for %s, got %v", s, v)
		}
	}
}

func TestValuationScoresNoData(t *testing.T) {
	sectors := []string{"A", "B"}
	got := ValuationScores(sectors, nil, nil)
	for s, v := range got {
		if v != NeutralScore {
			t.Fatalf("expected neutral for %s, got %v", s, v)
		}
	}
}
