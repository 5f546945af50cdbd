package signals

import (
	"SectorScope/internal/domain/models"
)

const (
	// TradingDaysPerMonth approximates one calendar month of daily bars.
	TradingDaysPerMonth = 21

	// minHistoryBars is the minimum price history for a sector to
	// participate in return calculations at all.
	minHistoryBars = 20

	relStrengthMonths = 12

	shortVolumeWindow = 20
	longVolumeWindow  = 50
)

// MomentumMonths are the trailing-return horizons, in months.
var MomentumMonths = []int{3, 6, 12}

// Internal momentum blend: trailing returns carry half the signal, relative
// strength about a third, volume the remainder.
const (
	returnsWeight     = 0.50
	relStrengthWeight = 0.35
	volumeWeight      = 0.15
)

// PriceReturns computes trailing percentage returns per horizon for every
// sector with enough history. A sector appears for a horizon only when it
// has at least months*21 bars.
func PriceReturns(prices map[string]models.PriceHistory) map[string]map[int]float64 {
	returns := make(map[string]map[int]float64)

	for sector, hist := range prices {
		closes := hist.Closes()
		if len(closes) < minHistoryBars {
			continue
		}

		horizons := make(map[int]float64)
		for _, months := range MomentumMonths {
			steps := months * TradingDaysPerMonth
			if len(closes) < steps {
				continue
			}
			start := closes[len(closes)-steps]
			end := closes[len(closes)-1]
			horizons[months] = (end - start) / start * 100
		}

		if len(horizons) > 0 {
			returns[sector] = horizons
		}
	}
	return returns
}

// RelativeStrength computes each sector's trailing 12-month return minus the
// benchmark's. When the benchmark itself lacks 12 months of bars the whole
// signal is unavailable and an empty map is returned.
func RelativeStrength(prices map[string]models.PriceHistory, benchmark models.PriceHistory) map[string]float64 {
	out := make(map[string]float64)

	bench := benchmark.Closes()
	steps := relStrengthMonths * TradingDaysPerMonth
	if len(bench) < steps {
		return out
	}
	benchReturn := (bench[len(bench)-1]/bench[len(bench)-steps] - 1) * 100

	for sector, hist := range prices {
		closes := hist.Closes()
		if len(closes) < steps {
			continue
		}
		sectorReturn := (closes[len(closes)-1]/closes[len(closes)-steps] - 1) * 100
		out[sector] = sectorReturn - benchReturn
	}
	return out
}

// VolumeTrend compares the short-window average volume against the long
// window: positive values indicate rising interest. Sectors with fewer than
// 50 volume observations are excluded.
func VolumeTrend(prices map[string]models.PriceHistory) map[string]float64 {
	out := make(map[string]float64)

	for sector, hist := range prices {
		vols := hist.Volumes()
		if len(vols) < longVolumeWindow {
			continue
		}
		shortAvg := tailMean(vols, shortVolumeWindow)
		longAvg := tailMean(vols, longVolumeWindow)
		if longAvg > 0 {
			out[sector] = (shortAvg - longAvg) / longAvg * 100
		}
	}
	return out
}

// MomentumScores blends normalized trailing returns, relative strength and
// volume trend into one 0-100 momentum score per canonical sector. Only the
// 12-month horizon feeds the blend; a participating sector without 12 months
// of bars contributes a zero return rather than dropping out.
func MomentumScores(sectors []string, prices map[string]models.PriceHistory, benchmark models.PriceHistory) map[string]float64 {
	returns := PriceReturns(prices)
	relStrength := RelativeStrength(prices, benchmark)
	volumeTrend := VolumeTrend(prices)

	returns12 := make(map[string]float64, len(returns))
	for sector, horizons := range returns {
		returns12[sector] = horizons[relStrengthMonths]
	}

	normReturns := ZScores(returns12, true)
	normRelStrength := ZScores(relStrength, true)
	normVolume := ZScores(volumeTrend, true)

	out := make(map[string]float64, len(sectors))
	for _, sector := range sectors {
		combined := returnsWeight*scoreOrNeutral(normReturns, sector) +
			relStrengthWeight*scoreOrNeutral(normRelStrength, sector) +
			volumeWeight*scoreOrNeutral(normVolume, sector)
		out[sector] = round2(combined)
	}
	return out
}

func tailMean(xs []float64, window int) float64 {
	var sum float64
	for _, v := range xs[len(xs)-window:] {
		sum += v
	}
	return sum / float64(window)
}
