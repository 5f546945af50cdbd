package signals

import "SectorScope/internal/domain/models"

// yoyPeriods is the offset for a year-over-year comparison on monthly data:
// the latest observation against the one 12 months earlier.
const yoyPeriods = 13

// EmploymentGrowth computes year-over-year employment growth per sector.
// With fewer than 13 observations the earliest available one stands in as
// the year-ago baseline: a degraded-but-available approximation, kept in
// preference to dropping the sector. Sectors whose baseline is non-positive
// are excluded.
func EmploymentGrowth(employment map[string]models.Series) map[string]float64 {
	out := make(map[string]float64)

	for sector, series := range employment {
		if len(series) == 0 {
			continue
		}
		current := series[len(series)-1].Value
		baseline := series[0].Value
		if len(series) >= yoyPeriods {
			baseline = series[len(series)-yoyPeriods].Value
		}
		if baseline > 0 {
			out[sector] = (current - baseline) / baseline * 100
		}
	}
	return out
}

// GrowthScores normalizes employment growth into a 0-100 score per canonical
// sector, higher growth scoring higher. Sectors without usable employment
// data are neutral.
func GrowthScores(sectors []string, employment map[string]models.Series) map[string]float64 {
	growth := EmploymentGrowth(employment)
	if len(growth) == 0 {
		return neutralScores(sectors)
	}

	scores := ZScores(growth, true)

	out := make(map[string]float64, len(sectors))
	for _, sector := range sectors {
		out[sector] = scoreOrNeutral(scores, sector)
	}
	return out
}
