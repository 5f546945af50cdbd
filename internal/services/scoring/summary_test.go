package scoring

import (
	"testing"

	"SectorScope/internal/domain/models"
)

func rec(sector string, rank int, opportunity float64) *models.SectorScore {
	return &models.SectorScore{Sector: sector, Rank: rank, OpportunityScore: opportunity}
}

func TestSummaryReportEmpty(t *testing.T) {
	s, err := NewScorer(nil, DefaultWeights())
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}
	got := s.SummaryReport(nil)
	if got.Error != "No scores available" {
		t.Fatalf("expected error report, got %+v", got)
	}
}

func TestSummaryReportDistributionAndDrivers(t *testing.T) {
	s, err := NewScorer(nil, DefaultWeights())
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}

	leader := rec("Tech", 1, 80)
	leader.MomentumScore = 82
	leader.InnovationScore = 75
	leader.ValuationScore = 40
	scores := []*models.SectorScore{
		leader,
		rec("Health", 2, 70),
		rec("Energy", 3, 60),
		rec("Utilities", 4, 50),
	}

	got := s.SummaryReport(scores)
	if got.Error != "" {
		t.Fatalf("unexpected error %q", got.Error)
	}
	if got.Distribution.Average != 65 || got.Distribution.Max != 80 ||
		got.Distribution.Min != 50 || got.Distribution.Spread != 30 {
		t.Fatalf("unexpected distribution %+v", got.Distribution)
	}

	if len(got.TopSectors) != 3 || got.TopSectors[0].Sector != "Tech" {
		t.Fatalf("unexpected top sectors %+v", got.TopSectors)
	}
	if len(got.BottomSectors) != 3 || got.BottomSectors[2].Sector != "Utilities" {
		t.Fatalf("unexpected bottom sectors %+v", got.BottomSectors)
	}

	want := []string{"strong momentum", "high R&D investment"}
	if len(got.TopSectorDrivers) != len(want) {
		t.Fatalf("unexpected drivers %v", got.TopSectorDrivers)
	}
	for i, d := range want {
		if got.TopSectorDrivers[i] != d {
			t.Errorf("driver %d: expected %q, got %q", i, d, got.TopSectorDrivers[i])
		}
	}

	if got.WeightsUsed != DefaultWeights() {
		t.Errorf("unexpected weights %+v", got.WeightsUsed)
	}
}

func TestSummaryReportSingleSector(t *testing.T) {
	s, err := NewScorer(nil, DefaultWeights())
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}

	got := s.SummaryReport([]*models.SectorScore{rec("Tech", 1, 61.5)})
	if len(got.TopSectors) != 1 || len(got.BottomSectors) != 1 {
		t.Fatalf("expected single-entry lists, got %+v", got)
	}
	if got.Distribution.Spread != 0 || got.Distribution.Average != 61.5 {
		t.Fatalf("unexpected distribution %+v", got.Distribution)
	}
}
