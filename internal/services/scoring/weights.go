package scoring

import (
	"fmt"
	"math"

	"SectorScope/internal/domain/models"
)

// weightSumTolerance absorbs float accumulation noise when checking that
// weights sum to 1.0.
const weightSumTolerance = 0.01

// DefaultWeights is the standard blend across the five signal categories.
func DefaultWeights() models.Weights {
	return models.Weights{
		Momentum:   0.25,
		Valuation:  0.20,
		Growth:     0.20,
		Innovation: 0.20,
		Macro:      0.15,
	}
}

// ValidateWeights rejects weight sets that do not sum to 1.0 within
// tolerance, or that carry a negative component.
func ValidateWeights(w models.Weights) error {
	for name, v := range map[string]float64{
		"momentum":   w.Momentum,
		"valuation":  w.Valuation,
		"growth":     w.Growth,
		"innovation": w.Innovation,
		"macro":      w.Macro,
	} {
		if v < 0 {
			return fmt.Errorf("weight %q must be non-negative, got %v", name, v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}
