package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
environment: test
server:
  port: 8080
sectors:
  benchmark: SPY
  etfs:
    - name: Technology
      ticker: XLK
    - name: Energy
      ticker: XLE
providers:
  market_data:
    source: http
scoring:
  weights:
    momentum: 0.25
    valuation: 0.20
    growth: 0.20
    innovation: 0.20
    macro: 0.15
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != "test" {
		t.Errorf("unexpected environment %q", cfg.Environment)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("unexpected port %d", cfg.Server.Port)
	}
	if got := cfg.SectorNames(); len(got) != 2 || got[0] != "Technology" || got[1] != "Energy" {
		t.Errorf("unexpected sector names %v", got)
	}
	if cfg.Scoring.Weights.Momentum != 0.25 {
		t.Errorf("unexpected momentum weight %v", cfg.Scoring.Weights.Momentum)
	}
}

func TestLoadMissingEnvironment(t *testing.T) {
	yaml := `
sectors:
  benchmark: SPY
  etfs:
    - name: Technology
      ticker: XLK
`
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadDuplicateSector(t *testing.T) {
	yaml := `
environment: test
sectors:
  benchmark: SPY
  etfs:
    - name: Technology
      ticker: XLK
    - name: Technology
      ticker: VGT
`
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatalf("expected duplicate sector error")
	}
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	yaml := `
environment: test
sectors:
  benchmark: SPY
  etfs:
    - name: Technology
      ticker: XLK
providers:
  market_data:
    source: carrier-pigeon
`
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatalf("expected source validation error")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("FRED_API_KEY", "abc123")
	t.Setenv("PORT", "9090")
	t.Setenv("MARKET_DATA_SOURCE", "clickhouse")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Providers.FRED.APIKey != "abc123" {
		t.Errorf("expected API key override, got %q", cfg.Providers.FRED.APIKey)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port override, got %d", cfg.Server.Port)
	}
	if cfg.Providers.MarketData.Source != "clickhouse" {
		t.Errorf("expected source override, got %q", cfg.Providers.MarketData.Source)
	}
}
