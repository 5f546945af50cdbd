package scoring

import (
	"math"
	"sort"

	"SectorScope/internal/domain/models"
	"SectorScope/internal/services/signals"
)

// Scorer combines the five signal categories into opportunity scores over a
// fixed canonical sector list. The sector list also fixes the enumeration
// order, which decides ties in the final ranking.
type Scorer struct {
	sectors []string
	weights models.Weights
}

// NewScorer builds a scorer for the given sectors. Invalid weights are a
// construction error, never a silent renormalization.
func NewScorer(sectors []string, weights models.Weights) (*Scorer, error) {
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}
	return &Scorer{sectors: sectors, weights: weights}, nil
}

// Weights returns the weight set the scorer was built with.
func (s *Scorer) Weights() models.Weights {
	return s.weights
}

// CalculateScores produces one record per canonical sector, sorted by
// opportunity score descending with dense 1-based ranks. Missing inputs
// degrade individual components to their fallbacks rather than failing the
// run.
func (s *Scorer) CalculateScores(input models.AnalysisInput) []*models.SectorScore {
	momentum := signals.MomentumScores(s.sectors, input.SectorPrices, input.Benchmark)
	valuation := signals.ValuationScores(s.sectors, input.SectorPE, input.SectorInfo)
	growth := signals.GrowthScores(s.sectors, input.Employment)
	innovation := signals.InnovationScores(s.sectors, input.RDIntensity)
	macro := signals.MacroScores(s.sectors, input.SectorPrices, input.Macro)

	priceReturns := signals.PriceReturns(input.SectorPrices)
	relStrength := signals.RelativeStrength(input.SectorPrices, input.Benchmark)
	employmentGrowth := signals.EmploymentGrowth(input.Employment)

	scores := make([]*models.SectorScore, 0, len(s.sectors))
	for _, sector := range s.sectors {
		rec := &models.SectorScore{
			Sector:          sector,
			MomentumScore:   momentum[sector],
			ValuationScore:  valuation[sector],
			GrowthScore:     growth[sector],
			InnovationScore: innovation[sector],
			MacroScore:      macro[sector],
		}
		rec.OpportunityScore = round2(
			s.weights.Momentum*rec.MomentumScore +
				s.weights.Valuation*rec.ValuationScore +
				s.weights.Growth*rec.GrowthScore +
				s.weights.Innovation*rec.InnovationScore +
				s.weights.Macro*rec.MacroScore)

		if horizons, ok := priceReturns[sector]; ok {
			rec.PriceReturn3Mo = lookup(horizons, 3)
			rec.PriceReturn6Mo = lookup(horizons, 6)
			rec.PriceReturn12Mo = lookup(horizons, 12)
		}
		if v, ok := relStrength[sector]; ok {
			rec.RelativeStrength = &v
		}
		rec.ForwardPE = forwardPE(sector, input.SectorPE, input.SectorInfo)
		if v, ok := employmentGrowth[sector]; ok {
			rec.EmploymentGrowth = &v
		}
		if v, ok := input.RDIntensity[sector]; ok {
			rec.RDIntensity = &v
		}

		scores = append(scores, rec)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].OpportunityScore > scores[j].OpportunityScore
	})
	for i, rec := range scores {
		rec.Rank = i + 1
	}
	return scores
}

// forwardPE picks the display P/E: the dedicated map when it holds a
// nonzero ratio for the sector, otherwise the sector's info record.
func forwardPE(sector string, sectorPE map[string]float64, info map[string]models.SectorInfo) *float64 {
	if v, ok := sectorPE[sector]; ok && v != 0 {
		return &v
	}
	if rec, ok := info[sector]; ok {
		return rec.ForwardPE
	}
	return nil
}

func lookup(m map[int]float64, k int) *float64 {
	if v, ok := m[k]; ok {
		return &v
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
