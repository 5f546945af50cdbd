package scoring

import (
	"math"
	"testing"
	"time"

	"SectorScope/internal/domain/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func monthly(start time.Time, values ...float64) models.Series {
	s := make(models.Series, len(values))
	for i, v := range values {
		s[i] = models.Observation{Date: start.AddDate(0, i, 0), Value: v}
	}
	return s
}

func TestValidateWeights(t *testing.T) {
	if err := ValidateWeights(DefaultWeights()); err != nil {
		t.Fatalf("default weights rejected: %v", err)
	}
	if err := ValidateWeights(models.Weights{Momentum: 0.5, Valuation: 0.5, Growth: 0.5}); err == nil {
		t.Fatalf("expected sum error")
	}
	if err := ValidateWeights(models.Weights{Momentum: 1.2, Valuation: -0.2}); err == nil {
		t.Fatalf("expected negative weight error")
	}
}

func TestNewScorerRejectsInvalidWeights(t *testing.T) {
	if _, err := NewScorer([]string{"A"}, models.Weights{Momentum: 1.5}); err == nil {
		t.Fatalf("expected construction error")
	}
}

func TestCalculateScoresEmptyInput(t *testing.T) {
	sectors := []string{"Tech", "Energy", "Utilities"}
	s, err := NewScorer(sectors, DefaultWeights())
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}

	scores := s.CalculateScores(models.AnalysisInput{})
	if len(scores) != len(sectors) {
		t.Fatalf("expected %d records, got %d", len(sectors), len(scores))
	}
	for i, rec := range scores {
		if rec.OpportunityScore != 50 {
			t.Errorf("%s: expected opportunity 50, got %v", rec.Sector, rec.OpportunityScore)
		}
		for name, v := range map[string]float64{
			"momentum":   rec.MomentumScore,
			"valuation":  rec.ValuationScore,
			"growth":     rec.GrowthScore,
			"innovation": rec.InnovationScore,
			"macro":      rec.MacroScore,
		} {
			if v != 50 {
				t.Errorf("%s %s: expected 50, got %v", rec.Sector, name, v)
			}
		}
		if rec.Rank != i+1 {
			t.Errorf("%s: expected rank %d, got %d", rec.Sector, i+1, rec.Rank)
		}
		// tied scores keep the canonical sector order
		if rec.Sector != sectors[i] {
			t.Errorf("position %d: expected %s, got %s", i, sectors[i], rec.Sector)
		}
	}
}

func TestCalculateScoresRanksAndRawMetrics(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sectors := []string{"Lagging", "Leading"}
	input := models.AnalysisInput{
		SectorPE: map[string]float64{"Leading": 10, "Lagging": 30},
		Employment: map[string]models.Series{
			"Leading": monthly(start, 100, 110),
			"Lagging": monthly(start, 100, 102),
		},
		RDIntensity: map[string]float64{"Leading": 0.10, "Lagging": 0.02},
	}

	s, err := NewScorer(sectors, DefaultWeights())
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}
	scores := s.CalculateScores(input)

	if scores[0].Sector != "Leading" || scores[0].Rank != 1 {
		t.Fatalf("expected Leading ranked first, got %+v", scores[0])
	}
	if scores[1].Sector != "Lagging" || scores[1].Rank != 2 {
		t.Fatalf("expected Lagging ranked second, got %+v", scores[1])
	}

	// momentum and macro fall back to 50; the other three split 65/35
	if !almostEqual(scores[0].OpportunityScore, 59) {
		t.Errorf("expected 59, got %v", scores[0].OpportunityScore)
	}
	if !almostEqual(scores[1].OpportunityScore, 41) {
		t.Errorf("expected 41, got %v", scores[1].OpportunityScore)
	}

	lead := scores[0]
	if lead.ForwardPE == nil || *lead.ForwardPE != 10 {
		t.Errorf("expected forward P/E 10, got %v", lead.ForwardPE)
	}
	if lead.EmploymentGrowth == nil || !almostEqual(*lead.EmploymentGrowth, 10) {
		t.Errorf("expected employment growth 10, got %v", lead.EmploymentGrowth)
	}
	if lead.RDIntensity == nil || *lead.RDIntensity != 0.10 {
		t.Errorf("expected R&D intensity 0.10, got %v", lead.RDIntensity)
	}
	if lead.PriceReturn12Mo != nil || lead.RelativeStrength != nil {
		t.Errorf("expected nil price metrics without history, got %+v", lead)
	}
}

func TestForwardPEFallsBackToInfo(t *testing.T) {
	pe := 22.5
	info := map[string]models.SectorInfo{"Tech": {ForwardPE: &pe}}

	if got := forwardPE("Tech", map[string]float64{"Tech": 0}, info); got == nil || *got != 22.5 {
		t.Fatalf("expected fallback 22.5, got %v", got)
	}
	if got := forwardPE("Tech", map[string]float64{"Tech": 18}, info); got == nil || *got != 18 {
		t.Fatalf("expected primary 18, got %v", got)
	}
	if got := forwardPE("Energy", nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
