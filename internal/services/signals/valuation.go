package signals

import "SectorScope/internal/domain/models"

// ValuationScores rates sectors on forward P/E: cheaper valuation scores
// higher. The dedicated P/E map is the primary source; when it is empty the
// per-sector info records supply the ratio instead. Non-positive ratios are
// invalid and discarded. With no valid ratio anywhere every sector is
// neutral.
func ValuationScores(sectors []string, sectorPE map[string]float64, info map[string]models.SectorInfo) map[string]float64 {
	pe := sectorPE
	if len(pe) == 0 {
		if len(info) == 0 {
			return neutralScores(sectors)
		}
		pe = make(map[string]float64, len(info))
		for sector, rec := range info {
			if rec.ForwardPE != nil {
				pe[sector] = *rec.ForwardPE
			}
		}
	}

	valid := make(map[string]float64, len(pe))
	for sector, v := range pe {
		if v > 0 {
			valid[sector] = v
		}
	}
	if len(valid) == 0 {
		return neutralScores(sectors)
	}

	scores := ZScores(valid, false)

	out := make(map[string]float64, len(sectors))
	for _, sector := range sectors {
		out[sector] = scoreOrNeutral(scores, sector)
	}
	return out
}

func neutralScores(sectors []string) map[string]float64 {
	out := make(map[string]float64, len(sectors))
	for _, sector := range sectors {
		out[sector] = NeutralScore
	}
	return out
}
