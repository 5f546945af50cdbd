package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"SectorScope/internal/domain/models"
	domrepo "SectorScope/internal/domain/repository"
	"SectorScope/internal/services/scoring"
	"SectorScope/pkg/config"
	applogger "SectorScope/pkg/logger"
)

// ErrSectorNotFound reports an unknown sector name in a lookup.
var ErrSectorNotFound = errors.New("sector not found")

// ScoresUseCase runs the scoring engine over the assembled dataset, with
// optional per-request weight overrides.
type ScoresUseCase struct {
	cfg     *config.Config
	data    *DatasetAssembler
	metrics domrepo.Metrics
	log     *applogger.Logger
}

func NewScoresUseCase(cfg *config.Config, data *DatasetAssembler, metrics domrepo.Metrics, log *applogger.Logger) *ScoresUseCase {
	return &ScoresUseCase{cfg: cfg, data: data, metrics: metrics, log: log}
}

// DefaultWeights returns the configured weight blend, falling back to the
// standard one when the config leaves scoring.weights empty.
func (uc *ScoresUseCase) DefaultWeights() models.Weights {
	w := models.Weights{
		Momentum:   uc.cfg.Scoring.Weights.Momentum,
		Valuation:  uc.cfg.Scoring.Weights.Valuation,
		Growth:     uc.cfg.Scoring.Weights.Growth,
		Innovation: uc.cfg.Scoring.Weights.Innovation,
		Macro:      uc.cfg.Scoring.Weights.Macro,
	}
	if w.Sum() == 0 {
		return scoring.DefaultWeights()
	}
	return w
}

// ResolveWeights merges request overrides onto the defaults and rescales the
// result to sum to 1.0. An unset parameter keeps its default; an explicit
// zero removes that signal from the blend. All-zero overrides cannot be
// rescaled and are rejected.
func (uc *ScoresUseCase) ResolveWeights(momentum, valuation, growth, innovation, macro *float64) (models.Weights, error) {
	w := uc.DefaultWeights()
	if momentum == nil && valuation == nil && growth == nil && innovation == nil && macro == nil {
		return w, nil
	}

	if momentum != nil {
		w.Momentum = *momentum
	}
	if valuation != nil {
		w.Valuation = *valuation
	}
	if growth != nil {
		w.Growth = *growth
	}
	if innovation != nil {
		w.Innovation = *innovation
	}
	if macro != nil {
		w.Macro = *macro
	}

	total := w.Sum()
	if total <= 0 {
		return models.Weights{}, fmt.Errorf("weight overrides sum to %v, nothing to score", total)
	}
	w.Momentum /= total
	w.Valuation /= total
	w.Growth /= total
	w.Innovation /= total
	w.Macro /= total
	return w, nil
}

// List scores every sector with the given weights.
func (uc *ScoresUseCase) List(ctx context.Context, weights models.Weights, refresh bool) (*models.ScoresResult, error) {
	start := time.Now()

	scorer, err := scoring.NewScorer(uc.cfg.SectorNames(), weights)
	if err != nil {
		uc.metrics.RecordScoringRun("invalid_weights")
		return nil, err
	}

	ds, err := uc.data.Dataset(ctx, refresh)
	if err != nil {
		uc.metrics.RecordScoringRun("dataset_error")
		return nil, err
	}

	scores := scorer.CalculateScores(ds.Input)

	uc.metrics.RecordScoringRun("ok")
	uc.metrics.RecordLatency("scoring_run", time.Since(start).Seconds())
	if len(scores) > 0 {
		uc.metrics.RecordTopScore(scores[0].Sector, scores[0].OpportunityScore)
	}
	uc.log.Info("scoring run complete",
		applogger.Int("sectors", len(scores)),
		applogger.Duration("duration_ms", time.Since(start)),
	)

	return &models.ScoresResult{
		Scores:      scores,
		WeightsUsed: weights,
		Timestamp:   time.Now().UTC(),
	}, nil
}

// Summary scores every sector and condenses the result.
func (uc *ScoresUseCase) Summary(ctx context.Context, weights models.Weights) (*models.Summary, error) {
	scorer, err := scoring.NewScorer(uc.cfg.SectorNames(), weights)
	if err != nil {
		uc.metrics.RecordScoringRun("invalid_weights")
		return nil, err
	}

	ds, err := uc.data.Dataset(ctx, false)
	if err != nil {
		return nil, err
	}

	scores := scorer.CalculateScores(ds.Input)
	summary := scorer.SummaryReport(scores)
	uc.metrics.RecordScoringRun("ok")
	return &summary, nil
}

// Sector returns one sector's record under default weights. The name match
// is case-insensitive.
func (uc *ScoresUseCase) Sector(ctx context.Context, name string) (*models.SectorScore, error) {
	result, err := uc.List(ctx, uc.DefaultWeights(), false)
	if err != nil {
		return nil, err
	}
	for _, rec := range result.Scores {
		if strings.EqualFold(rec.Sector, name) {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSectorNotFound, name)
}

// SectorNames returns the canonical sector names in configured order.
func (uc *ScoresUseCase) SectorNames() []string {
	return uc.cfg.SectorNames()
}

// FREDConfigured reports whether the macro provider has an API key.
func (uc *ScoresUseCase) FREDConfigured() bool {
	return uc.cfg.Providers.FRED.APIKey != ""
}

// BLSConfigured reports whether the employment provider has an API key.
func (uc *ScoresUseCase) BLSConfigured() bool {
	return uc.cfg.Providers.BLS.APIKey != ""
}

// SourceStatus reports the last assembly's per-source health.
func (uc *ScoresUseCase) SourceStatus(ctx context.Context) (map[string]string, time.Time, error) {
	ds, err := uc.data.Dataset(ctx, false)
	if err != nil {
		return nil, time.Time{}, err
	}
	return ds.Errors, ds.FetchedAt, nil
}
