package signals

import "math"

const (
	// NeutralScore is substituted whenever a signal cannot be computed
	// for a sector.
	NeutralScore = 50.0

	// InnovationPenalty is the below-neutral score for sectors with no
	// valid R&D figure while peers have one. Intentionally distinct from
	// NeutralScore; the ranking depends on the exact value.
	InnovationPenalty = 30.0

	// zSpread maps one standard deviation to 15 score points, so roughly
	// +-3.3 sigma saturates the 0-100 scale.
	zSpread = 15.0
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MinMaxScores normalizes values to the 0-100 scale using min-max scaling.
// Inverted when lower raw values are better. With zero spread every sector
// gets the neutral 50.0: degenerate input carries no ordering signal and is
// not an error.
func MinMaxScores(values map[string]float64, higherIsBetter bool) map[string]float64 {
	out := make(map[string]float64, len(values))
	if len(values) == 0 {
		return out
	}

	minV := math.Inf(1)
	maxV := math.Inf(-1)
	for _, v := range values {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	if maxV == minV {
		for k := range values {
			out[k] = NeutralScore
		}
		return out
	}

	for k, v := range values {
		score := (v - minV) / (maxV - minV) * 100
		if !higherIsBetter {
			score = 100 - score
		}
		out[k] = round2(score)
	}
	return out
}

// ZScores normalizes values to the 0-100 scale via population z-scores:
// score = 50 + 15z, clamped to [0,100], inverted when lower is better.
// Clamping is deliberate lossy compression of outliers, keeping the scale
// comparable across signals. Zero variance yields the neutral 50.0 for
// every sector.
func ZScores(values map[string]float64, higherIsBetter bool) map[string]float64 {
	out := make(map[string]float64, len(values))
	if len(values) == 0 {
		return out
	}

	mean, std := meanStd(values)
	if std == 0 {
		for k := range values {
			out[k] = NeutralScore
		}
		return out
	}

	for k, v := range values {
		z := (v - mean) / std
		score := NeutralScore + z*zSpread
		score = math.Max(0, math.Min(100, score))
		if !higherIsBetter {
			score = 100 - score
		}
		out[k] = round2(score)
	}
	return out
}

// meanStd computes the population mean and standard deviation.
func meanStd(values map[string]float64) (mean, std float64) {
	n := float64(len(values))
	for _, v := range values {
		mean += v
	}
	mean /= n

	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / n)
}

// scoreOrNeutral looks up a sector's normalized score, substituting the
// neutral fallback when the sector dropped out of the component.
func scoreOrNeutral(scores map[string]float64, sector string) float64 {
	if s, ok := scores[sector]; ok {
		return s
	}
	return NeutralScore
}
