package model

import "fmt"

// OptionKind selects the payoff direction of a vanilla option.
// Keep these values stable; they appear in configs, requests and CSV output.
type OptionKind string

const (
	Call OptionKind = "call"
	Put  OptionKind = "put"
)

// ParseOptionKind normalizes and validates an option kind string.
func ParseOptionKind(s string) (OptionKind, error) {
	switch OptionKind(s) {
	case Call, Put:
		return OptionKind(s), nil
	default:
		return "", &ValidationError{Field: "option_kind", Reason: fmt.Sprintf("must be %q or %q, got %q", Call, Put, s)}
	}
}

// Intrinsic is the immediate-exercise value of the option at the given
// underlying price.
func (k OptionKind) Intrinsic(price, strike float64) float64 {
	if k == Call {
		if price > strike {
			return price - strike
		}
		return 0
	}
	if strike > price {
		return strike - price
	}
	return 0
}

// ExerciseStyle determines when the holder may exercise.
type ExerciseStyle string

const (
	European ExerciseStyle = "european"
	American ExerciseStyle = "american"
)

// ParseExerciseStyle normalizes and validates an exercise style string.
func ParseExerciseStyle(s string) (ExerciseStyle, error) {
	switch ExerciseStyle(s) {
	case European, American:
		return ExerciseStyle(s), nil
	default:
		return "", &ValidationError{Field: "exercise", Reason: fmt.Sprintf("must be %q or %q, got %q", European, American, s)}
	}
}

// LatticeParams configures the binomial tree engine.
// Units:
// - Rate and DividendYield: continuously compounded, per year
// - Time: years
// - Volatility: annualized
type LatticeParams struct {
	Spot          float64
	Strike        float64
	Rate          float64
	Time          float64
	Volatility    float64
	Steps         int
	DividendYield float64
	OptionKind    OptionKind
	Exercise      ExerciseStyle
}

// NewLatticeParams builds and validates lattice parameters in one call.
func NewLatticeParams(p LatticeParams) (LatticeParams, error) {
	if err := p.Validate(); err != nil {
		return LatticeParams{}, err
	}
	return p, nil
}

func (p LatticeParams) Validate() error {
	if p.Steps <= 0 {
		return &ValidationError{Field: "steps", Reason: "must be > 0"}
	}
	if p.Spot <= 0 {
		return &ValidationError{Field: "spot", Reason: "must be > 0"}
	}
	if p.Strike <= 0 {
		return &ValidationError{Field: "strike", Reason: "must be > 0"}
	}
	if p.Volatility < 0 {
		return &ValidationError{Field: "volatility", Reason: "must be >= 0"}
	}
	if p.Time <= 0 {
		return &ValidationError{Field: "time", Reason: "must be > 0"}
	}
	if _, err := ParseOptionKind(string(p.OptionKind)); err != nil {
		return err
	}
	if _, err := ParseExerciseStyle(string(p.Exercise)); err != nil {
		return err
	}
	return nil
}

// SimulationParams configures geometric Brownian motion path generation.
// Seed is optional: nil means a fresh, non-deterministic source per call.
type SimulationParams struct {
	Spot          float64
	Rate          float64
	Time          float64
	Volatility    float64
	Paths         int
	Steps         int
	DividendYield float64
	Seed          *int64
}

// NewSimulationParams builds and validates simulation parameters in one call.
func NewSimulationParams(p SimulationParams) (SimulationParams, error) {
	if err := p.Validate(); err != nil {
		return SimulationParams{}, err
	}
	return p, nil
}

func (p SimulationParams) Validate() error {
	if p.Spot <= 0 {
		return &ValidationError{Field: "spot", Reason: "must be > 0"}
	}
	if p.Volatility < 0 {
		return &ValidationError{Field: "volatility", Reason: "must be >= 0"}
	}
	if p.Time <= 0 {
		return &ValidationError{Field: "time", Reason: "must be > 0"}
	}
	if p.Paths <= 0 {
		return &ValidationError{Field: "paths", Reason: "must be > 0"}
	}
	if p.Steps <= 0 {
		return &ValidationError{Field: "steps", Reason: "must be > 0"}
	}
	return nil
}

// ValidationError reports a parameter that violates its stated invariant.
// It is always raised before any computation begins.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
