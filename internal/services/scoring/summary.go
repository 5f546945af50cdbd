package scoring

import (
	"time"

	"SectorScope/internal/domain/models"
)

// driverThreshold marks a component score strong enough to be called out as
// a driver of the top sector.
const driverThreshold = 70.0

// highlightCount is how many sectors appear at each end of the summary.
const highlightCount = 3

// SummaryReport condenses a ranked score list into rankings, distribution
// stats and the drivers behind the top sector. An empty list yields an
// error-tagged report instead of a hard failure.
func (s *Scorer) SummaryReport(scores []*models.SectorScore) models.Summary {
	if len(scores) == 0 {
		return models.Summary{Error: "No scores available"}
	}

	top := scores
	if len(top) > highlightCount {
		top = top[:highlightCount]
	}
	bottom := scores
	if len(bottom) > highlightCount {
		bottom = bottom[len(bottom)-highlightCount:]
	}

	var sum float64
	maxScore := scores[0].OpportunityScore
	minScore := scores[0].OpportunityScore
	for _, rec := range scores {
		sum += rec.OpportunityScore
		if rec.OpportunityScore > maxScore {
			maxScore = rec.OpportunityScore
		}
		if rec.OpportunityScore < minScore {
			minScore = rec.OpportunityScore
		}
	}

	leader := scores[0]
	var drivers []string
	if leader.MomentumScore >= driverThreshold {
		drivers = append(drivers, "strong momentum")
	}
	if leader.ValuationScore >= driverThreshold {
		drivers = append(drivers, "attractive valuation")
	}
	if leader.GrowthScore >= driverThreshold {
		drivers = append(drivers, "employment growth")
	}
	if leader.InnovationScore >= driverThreshold {
		drivers = append(drivers, "high R&D investment")
	}
	if leader.MacroScore >= driverThreshold {
		drivers = append(drivers, "favorable macro positioning")
	}

	return models.Summary{
		Timestamp:     time.Now().UTC(),
		TopSectors:    ranked(top),
		BottomSectors: ranked(bottom),
		Distribution: models.ScoreDistribution{
			Average: round2(sum / float64(len(scores))),
			Max:     round2(maxScore),
			Min:     round2(minScore),
			Spread:  round2(maxScore - minScore),
		},
		TopSectorDrivers: drivers,
		WeightsUsed:      s.weights,
	}
}

func ranked(scores []*models.SectorScore) []models.RankedSector {
	out := make([]models.RankedSector, len(scores))
	for i, rec := range scores {
		out[i] = models.RankedSector{Rank: rec.Rank, Sector: rec.Sector, Score: rec.OpportunityScore}
	}
	return out
}
