package models

import "time"

// Bar is one daily observation of a sector ETF. Field names are fixed here,
// at the input-adaptation boundary; provider payloads with other casings are
// resolved by the provider clients, never inside the calculators.
type Bar struct {
	Date   time.Time
	Close  float64
	Volume float64
}

// PriceHistory is a chronologically ordered sequence of daily bars.
// The last element is the observation "as of now".
type PriceHistory []Bar

// Closes returns the close column in chronological order.
func (h PriceHistory) Closes() []float64 {
	out := make([]float64, len(h))
	for i, b := range h {
		out[i] = b.Close
	}
	return out
}

// Volumes returns the volume column in chronological order.
func (h PriceHistory) Volumes() []float64 {
	out := make([]float64, len(h))
	for i, b := range h {
		out[i] = b.Volume
	}
	return out
}

// Observation is one dated value of a generic time series (employment count,
// interest rate, index level).
type Observation struct {
	Date  time.Time
	Value float64
}

// Series is a chronologically ordered sequence of observations.
type Series []Observation

// Values returns the value column in chronological order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, o := range s {
		out[i] = o.Value
	}
	return out
}

// SectorInfo carries per-ETF descriptive figures from the market data
// provider. Pointers distinguish "not reported" from zero.
type SectorInfo struct {
	ForwardPE     *float64 `json:"forward_pe"`
	TrailingPE    *float64 `json:"trailing_pe"`
	DividendYield *float64 `json:"dividend_yield"`
	AvgVolume     *float64 `json:"avg_volume"`
}

// AnalysisInput is the full bag of raw inputs one scoring run consumes.
// Nil maps and nil slices are treated as empty collections, not errors.
type AnalysisInput struct {
	// SectorPrices holds daily bars keyed by canonical sector name.
	SectorPrices map[string]PriceHistory
	// Benchmark is the broad market index history used for relative
	// strength. Kept separate from SectorPrices so no reserved map key
	// is needed.
	Benchmark PriceHistory
	// SectorInfo holds descriptive ETF figures keyed by sector.
	SectorInfo map[string]SectorInfo
	// Macro holds macro series keyed by series name (e.g. "treasury_10y").
	Macro map[string]Series
	// SectorPE is the primary forward P/E source keyed by sector.
	SectorPE map[string]float64
	// Employment holds monthly employment counts keyed by sector.
	Employment map[string]Series
	// RDIntensity holds R&D-to-revenue ratios keyed by sector.
	RDIntensity map[string]float64
}
