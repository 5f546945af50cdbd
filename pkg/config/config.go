package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"SectorScope/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Cache struct {
		TTL   time.Duration `yaml:"ttl"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Providers struct {
		MarketData struct {
			BaseURL     string        `yaml:"base_url"`
			Source      string        `yaml:"source"`
			PeriodYears int           `yaml:"period_years"`
			Timeout     time.Duration `yaml:"timeout"`
		} `yaml:"market_data"`
		FRED struct {
			BaseURL string            `yaml:"base_url"`
			APIKey  string            `yaml:"api_key"`
			Series  map[string]string `yaml:"series"`
			Timeout time.Duration     `yaml:"timeout"`
		} `yaml:"fred"`
		BLS struct {
			BaseURL string            `yaml:"base_url"`
			APIKey  string            `yaml:"api_key"`
			Series  map[string]string `yaml:"series"`
			Timeout time.Duration     `yaml:"timeout"`
		} `yaml:"bls"`
		RD struct {
			URL      string            `yaml:"url"`
			Sheet    string            `yaml:"sheet"`
			SkipRows int               `yaml:"skip_rows"`
			Mapping  map[string]string `yaml:"mapping"`
			Timeout  time.Duration     `yaml:"timeout"`
		} `yaml:"rd"`
	} `yaml:"providers"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Sectors struct {
		Benchmark string   `yaml:"benchmark"`
		ETFs      []Sector `yaml:"etfs"`
	} `yaml:"sectors"`
	Scoring struct {
		Weights struct {
			Momentum   float64 `yaml:"momentum"`
			Valuation  float64 `yaml:"valuation"`
			Growth     float64 `yaml:"growth"`
			Innovation float64 `yaml:"innovation"`
			Macro      float64 `yaml:"macro"`
		} `yaml:"weights"`
	} `yaml:"scoring"`
}

// Sector pairs a GICS sector name with its proxy ETF ticker. The order in
// the config file fixes the canonical enumeration order used everywhere.
type Sector struct {
	Name   string `yaml:"name"`
	Ticker string `yaml:"ticker"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("FRED_API_KEY"); v != "" {
		c.Providers.FRED.APIKey = v
	}
	if v := os.Getenv("BLS_API_KEY"); v != "" {
		c.Providers.BLS.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("MARKET_DATA_SOURCE"); v != "" {
		c.Providers.MarketData.Source = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}

	return c, nil
}

// SectorNames returns the canonical sector names in configured order.
func (c *Config) SectorNames() []string {
	names := make([]string, len(c.Sectors.ETFs))
	for i, s := range c.Sectors.ETFs {
		names[i] = s.Name
	}
	return names
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if len(c.Sectors.ETFs) == 0 {
		return fmt.Errorf("sectors.etfs cannot be empty")
	}
	if c.Sectors.Benchmark == "" {
		return fmt.Errorf("sectors.benchmark is required")
	}
	seen := make(map[string]bool, len(c.Sectors.ETFs))
	for _, s := range c.Sectors.ETFs {
		if s.Name == "" || s.Ticker == "" {
			return fmt.Errorf("sectors.etfs entries need both name and ticker")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate sector '%s'", s.Name)
		}
		seen[s.Name] = true
	}
	src := c.Providers.MarketData.Source
	if src != "" && src != "http" && src != "clickhouse" {
		return fmt.Errorf("providers.market_data.source must be 'http' or 'clickhouse', got '%s'", src)
	}
	return nil
}
