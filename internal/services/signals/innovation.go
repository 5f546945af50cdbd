package signals

// InnovationScores rates sectors on R&D intensity (R&D spend over revenue).
// Zero or negative ratios mean "no data" and are excluded before
// normalization. Sectors left without a valid figure while peers have one
// receive the InnovationPenalty rather than the neutral fallback; with no
// valid figure anywhere (or no input at all) every sector is neutral.
func InnovationScores(sectors []string, rdIntensity map[string]float64) map[string]float64 {
	if len(rdIntensity) == 0 {
		return neutralScores(sectors)
	}

	valid := make(map[string]float64, len(rdIntensity))
	for sector, v := range rdIntensity {
		if v > 0 {
			valid[sector] = v
		}
	}
	if len(valid) == 0 {
		return neutralScores(sectors)
	}

	scores := ZScores(valid, true)

	out := make(map[string]float64, len(sectors))
	for _, sector := range sectors {
		if s, ok := scores[sector]; ok {
			out[sector] = s
		} else {
			out[sector] = InnovationPenalty
		}
	}
	return out
}
