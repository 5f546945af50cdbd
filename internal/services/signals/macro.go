package signals

import (
	"math"
	"sort"
	"time"

	"SectorScope/internal/domain/models"
)

// RateSeriesKey names the macro series used for rate sensitivity.
const RateSeriesKey = "treasury_10y"

// minCommonMonths is the minimum overlap between sector returns and rate
// changes for a correlation to be meaningful.
const minCommonMonths = 12

// RateSensitivity computes the Pearson correlation between each sector's
// monthly returns and monthly interest-rate changes. Both series are
// resampled to month-end values first; only sectors with at least 12
// overlapping months qualify. An empty rate series yields an empty map.
func RateSensitivity(prices map[string]models.PriceHistory, rates models.Series) map[string]float64 {
	out := make(map[string]float64)

	rateChanges := monthlyChanges(observations(rates))
	if len(rateChanges) == 0 {
		return out
	}

	for sector, hist := range prices {
		if len(hist) == 0 {
			continue
		}
		returns := monthlyChanges(closeObservations(hist))

		common := commonMonths(returns, rateChanges)
		if len(common) < minCommonMonths {
			continue
		}

		xs := make([]float64, len(common))
		ys := make([]float64, len(common))
		for i, m := range common {
			xs[i] = returns[m]
			ys[i] = rateChanges[m]
		}

		corr, ok := pearson(xs, ys)
		if ok {
			out[sector] = corr
		}
	}
	return out
}

// MacroScores normalizes rate sensitivity into a 0-100 score per canonical
// sector. Lower correlation with rates reads as resilience and scores
// higher. Without rate data, or with no qualifying sector, every sector is
// neutral.
func MacroScores(sectors []string, prices map[string]models.PriceHistory, macro map[string]models.Series) map[string]float64 {
	sensitivity := RateSensitivity(prices, macro[RateSeriesKey])
	if len(sensitivity) == 0 {
		return neutralScores(sectors)
	}

	scores := ZScores(sensitivity, false)

	out := make(map[string]float64, len(sectors))
	for _, sector := range sectors {
		out[sector] = scoreOrNeutral(scores, sector)
	}
	return out
}

type datedValue struct {
	date  time.Time
	value float64
}

func observations(s models.Series) []datedValue {
	out := make([]datedValue, len(s))
	for i, obs := range s {
		out[i] = datedValue{date: obs.Date, value: obs.Value}
	}
	return out
}

func closeObservations(h models.PriceHistory) []datedValue {
	out := make([]datedValue, len(h))
	for i, bar := range h {
		out[i] = datedValue{date: bar.Date, value: bar.Close}
	}
	return out
}

// monthlyChanges resamples a daily series to its last value per calendar
// month and returns the percentage change between consecutive months, keyed
// by month index (year*12 + month). A gap in the calendar breaks the chain,
// so the month after a gap produces no change.
func monthlyChanges(obs []datedValue) map[int]float64 {
	last := make(map[int]float64)
	for _, o := range obs {
		last[monthIndex(o.date)] = o.value
	}

	months := make([]int, 0, len(last))
	for m := range last {
		months = append(months, m)
	}
	sort.Ints(months)

	changes := make(map[int]float64)
	for i := 1; i < len(months); i++ {
		prev, cur := months[i-1], months[i]
		if cur-prev != 1 {
			continue
		}
		base := last[prev]
		if base != 0 {
			changes[cur] = (last[cur] - base) / base
		}
	}
	return changes
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func commonMonths(a, b map[int]float64) []int {
	out := make([]int, 0, len(a))
	for m := range a {
		if _, ok := b[m]; ok {
			out = append(out, m)
		}
	}
	sort.Ints(out)
	return out
}

// pearson computes the Pearson correlation coefficient. It reports false
// when either series has zero variance, where the coefficient is undefined.
func pearson(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	if n == 0 {
		return 0, false
	}

	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}
