package models

import "time"

// Weights is the weight vector combining the five component scores into one
// opportunity score. Construction-time validation lives in services/scoring.
type Weights struct {
	Momentum   float64 `json:"momentum" yaml:"momentum"`
	Valuation  float64 `json:"valuation" yaml:"valuation"`
	Growth     float64 `json:"growth" yaml:"growth"`
	Innovation float64 `json:"innovation" yaml:"innovation"`
	Macro      float64 `json:"macro" yaml:"macro"`
}

// Sum returns the total of the five weights.
func (w Weights) Sum() float64 {
	return w.Momentum + w.Valuation + w.Growth + w.Innovation + w.Macro
}

// SectorScore is a sector's complete scoring breakdown for one analysis run.
// Raw display metrics are pointers: nil means the underlying input had too
// little history to compute them.
type SectorScore struct {
	Sector           string  `json:"sector"`
	OpportunityScore float64 `json:"opportunity_score"`
	Rank             int     `json:"rank"`

	MomentumScore   float64 `json:"momentum_score"`
	ValuationScore  float64 `json:"valuation_score"`
	GrowthScore     float64 `json:"growth_score"`
	InnovationScore float64 `json:"innovation_score"`
	MacroScore      float64 `json:"macro_score"`

	PriceReturn3Mo   *float64 `json:"price_return_3mo"`
	PriceReturn6Mo   *float64 `json:"price_return_6mo"`
	PriceReturn12Mo  *float64 `json:"price_return_12mo"`
	RelativeStrength *float64 `json:"relative_strength"`
	ForwardPE        *float64 `json:"forward_pe"`
	EmploymentGrowth *float64 `json:"employment_growth"`
	RDIntensity      *float64 `json:"rd_intensity"`
}

// RankedSector is one row of a summary top/bottom list.
type RankedSector struct {
	Rank   int     `json:"rank"`
	Sector string  `json:"sector"`
	Score  float64 `json:"score"`
}

// ScoreDistribution describes the spread of opportunity scores in a run.
type ScoreDistribution struct {
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
	Spread  float64 `json:"spread"`
}

// Summary is the derived report over one list of sector scores. Error is set
// instead of returning a Go error when there is nothing to summarize.
type Summary struct {
	Error            string            `json:"error,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	TopSectors       []RankedSector    `json:"top_sectors"`
	BottomSectors    []RankedSector    `json:"bottom_sectors"`
	Distribution     ScoreDistribution `json:"score_distribution"`
	TopSectorDrivers []string          `json:"top_sector_drivers"`
	WeightsUsed      Weights           `json:"weights_used"`
}

// ScoresResult is the API-facing envelope for a full scoring run.
type ScoresResult struct {
	Scores      []*SectorScore `json:"scores"`
	WeightsUsed Weights        `json:"weights_used"`
	Timestamp   time.Time      `json:"timestamp"`
}
