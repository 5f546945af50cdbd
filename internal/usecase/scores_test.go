package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"SectorScope/pkg/config"
	applogger "SectorScope/pkg/logger"
)

func weightsUC() *ScoresUseCase {
	return NewScoresUseCase(&config.Config{}, nil, nil, nil)
}

func fw(v float64) *float64 { return &v }

func TestResolveWeightsDefaults(t *testing.T) {
	uc := weightsUC()
	w, err := uc.ResolveWeights(nil, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveWeights: %v", err)
	}
	if w.Momentum != 0.25 || w.Valuation != 0.20 || w.Growth != 0.20 ||
		w.Innovation != 0.20 || w.Macro != 0.15 {
		t.Fatalf("expected default blend, got %+v", w)
	}
}

func TestResolveWeightsRenormalizes(t *testing.T) {
	uc := weightsUC()
	w, err := uc.ResolveWeights(fw(0.5), nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveWeights: %v", err)
	}
	// overrides push the sum to 1.25, then everything rescales
	want := map[string]float64{
		"momentum":   0.40,
		"valuation":  0.16,
		"growth":     0.16,
		"innovation": 0.16,
		"macro":      0.12,
	}
	got := map[string]float64{
		"momentum":   w.Momentum,
		"valuation":  w.Valuation,
		"growth":     w.Growth,
		"innovation": w.Innovation,
		"macro":      w.Macro,
	}
	for name, v := range want {
		if math.Abs(got[name]-v) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", name, v, got[name])
		}
	}
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		t.Errorf("expected sum 1.0, got %v", w.Sum())
	}
}

func TestResolveWeightsExplicitZeroDropsSignal(t *testing.T) {
	uc := weightsUC()
	w, err := uc.ResolveWeights(nil, nil, nil, nil, fw(0))
	if err != nil {
		t.Fatalf("ResolveWeights: %v", err)
	}
	if w.Macro != 0 {
		t.Fatalf("expected macro dropped, got %v", w.Macro)
	}
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		t.Fatalf("expected sum 1.0, got %v", w.Sum())
	}
	if math.Abs(w.Momentum-0.25/0.85) > 1e-9 {
		t.Fatalf("expected momentum rescaled to %v, got %v", 0.25/0.85, w.Momentum)
	}
}

func TestResolveWeightsAllZeroRejected(t *testing.T) {
	uc := weightsUC()
	if _, err := uc.ResolveWeights(fw(0), fw(0), fw(0), fw(0), fw(0)); err == nil {
		t.Fatalf("expected error for all-zero overrides")
	}
}

func TestSectorLookup(t *testing.T) {
	cfg := assemblerConfig()
	data := newAssembler(cfg, &stubPrices{}, stubMacro{}, &stubMetrics{})
	uc := NewScoresUseCase(cfg, data, &stubMetrics{}, applogger.Nop())

	rec, err := uc.Sector(context.Background(), "technology")
	if err != nil {
		t.Fatalf("Sector: %v", err)
	}
	if rec.Sector != "Technology" {
		t.Fatalf("expected case-insensitive match, got %q", rec.Sector)
	}

	if _, err := uc.Sector(context.Background(), "Semiconductors"); !errors.Is(err, ErrSectorNotFound) {
		t.Fatalf("expected ErrSectorNotFound, got %v", err)
	}
}

func TestDefaultWeightsFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scoring.Weights.Momentum = 0.5
	cfg.Scoring.Weights.Valuation = 0.5

	uc := NewScoresUseCase(cfg, nil, nil, nil)
	w := uc.DefaultWeights()
	if w.Momentum != 0.5 || w.Valuation != 0.5 || w.Growth != 0 {
		t.Fatalf("expected configured blend, got %+v", w)
	}
}
