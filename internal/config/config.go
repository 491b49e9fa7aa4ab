package config

import (
	"errors"
	"fmt"
	"os"

	"option-pricer/internal/model"
	"option-pricer/internal/payoff"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
// Everything is optional; omitted fields fall back to Default().
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // "debug" or "release"
}

// DefaultsConfig pre-fills the HTML form, the CLI prompt and any request
// field the caller leaves out.
type DefaultsConfig struct {
	Spot          float64 `yaml:"spot"`
	Rate          float64 `yaml:"rate"`
	Time          float64 `yaml:"time"`
	Volatility    float64 `yaml:"volatility"`
	DividendYield float64 `yaml:"dividend_yield"`
	Paths         int     `yaml:"paths"`
	Steps         int     `yaml:"steps"`
	Seed          *int64  `yaml:"seed"`
	PayoffExpr    string  `yaml:"payoff_expr"`
}

// Default mirrors the classic demonstration scenario: at-the-money call,
// one year, 20% vol.
func Default() *Config {
	seed := int64(42)
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "release",
		},
		Defaults: DefaultsConfig{
			Spot:          100,
			Rate:          0.05,
			Time:          1.0,
			Volatility:    0.2,
			DividendYield: 0,
			Paths:         50000,
			Steps:         252,
			Seed:          &seed,
			PayoffExpr:    "max(terminal - 100, 0)",
		},
	}
}

// Load reads a YAML config, overlays it onto Default and validates it.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the defaults by constructing the model records and
// compiling the payoff expression, the same checks a pricing call would run.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if _, err := model.NewSimulationParams(c.Defaults.ToSimulationParams()); err != nil {
		return fmt.Errorf("defaults invalid: %w", err)
	}
	if _, err := payoff.NewPathExpression(c.Defaults.PayoffExpr); err != nil {
		return fmt.Errorf("defaults invalid: %w", err)
	}
	return nil
}

func (d DefaultsConfig) ToSimulationParams() model.SimulationParams {
	return model.SimulationParams{
		Spot:          d.Spot,
		Rate:          d.Rate,
		Time:          d.Time,
		Volatility:    d.Volatility,
		Paths:         d.Paths,
		Steps:         d.Steps,
		DividendYield: d.DividendYield,
		Seed:          d.Seed,
	}
}
