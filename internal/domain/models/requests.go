package models

// Requests for the scoring HTTP endpoints. Defined in domain for consistency
// and reuse. Weight fields are pointers so an omitted parameter falls back to
// the configured default while an explicit 0 stays zero.

type ScoresRequest struct {
	Momentum   *float64 `query:"momentum" json:"momentum" validate:"omitempty,gte=0,lte=1"`
	Valuation  *float64 `query:"valuation" json:"valuation" validate:"omitempty,gte=0,lte=1"`
	Growth     *float64 `query:"growth" json:"growth" validate:"omitempty,gte=0,lte=1"`
	Innovation *float64 `query:"innovation" json:"innovation" validate:"omitempty,gte=0,lte=1"`
	Macro      *float64 `query:"macro" json:"macro" validate:"omitempty,gte=0,lte=1"`
	Refresh    bool     `query:"refresh" json:"refresh"`
}

type SummaryRequest struct {
	Momentum   *float64 `query:"momentum" json:"momentum" validate:"omitempty,gte=0,lte=1"`
	Valuation  *float64 `query:"valuation" json:"valuation" validate:"omitempty,gte=0,lte=1"`
	Growth     *float64 `query:"growth" json:"growth" validate:"omitempty,gte=0,lte=1"`
	Innovation *float64 `query:"innovation" json:"innovation" validate:"omitempty,gte=0,lte=1"`
	Macro      *float64 `query:"macro" json:"macro" validate:"omitempty,gte=0,lte=1"`
}
