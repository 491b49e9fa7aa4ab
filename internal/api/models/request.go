package models

import "option-pricer/internal/model"

// LatticeRequest is the body for POST /api/v1/price/lattice.
// Rate and dividend_yield may legitimately be zero or negative, so only the
// strictly-positive fields carry a binding tag; full validation happens in
// the model layer either way.
type LatticeRequest struct {
	Spot          float64 `json:"spot" binding:"required"`
	Strike        float64 `json:"strike" binding:"required"`
	Rate          float64 `json:"rate"`
	Time          float64 `json:"time" binding:"required"`
	Volatility    float64 `json:"volatility"`
	Steps         int     `json:"steps" binding:"required"`
	DividendYield float64 `json:"dividend_yield"`
	OptionKind    string  `json:"option_kind" binding:"required"`
	Exercise      string  `json:"exercise"`
}

func (r LatticeRequest) ToModelParams() model.LatticeParams {
	exercise := r.Exercise
	if exercise == "" {
		exercise = string(model.European)
	}
	return model.LatticeParams{
		Spot:          r.Spot,
		Strike:        r.Strike,
		Rate:          r.Rate,
		Time:          r.Time,
		Volatility:    r.Volatility,
		Steps:         r.Steps,
		DividendYield: r.DividendYield,
		OptionKind:    model.OptionKind(r.OptionKind),
		Exercise:      model.ExerciseStyle(exercise),
	}
}

// MonteCarloRequest is the body for POST /api/v1/price/montecarlo.
// A missing seed means a non-deterministic run; steps defaults to 1
// (a single terminal draw).
type MonteCarloRequest struct {
	Spot          float64 `json:"spot" binding:"required"`
	Rate          float64 `json:"rate"`
	Time          float64 `json:"time" binding:"required"`
	Volatility    float64 `json:"volatility"`
	DividendYield float64 `json:"dividend_yield"`
	Paths         int     `json:"paths" binding:"required"`
	Steps         int     `json:"steps"`
	Seed          *int64  `json:"seed"`
	PayoffExpr    string  `json:"payoff_expr" binding:"required"`
}

func (r MonteCarloRequest) ToModelParams() model.SimulationParams {
	steps := r.Steps
	if steps == 0 {
		steps = 1
	}
	return model.SimulationParams{
		Spot:          r.Spot,
		Rate:          r.Rate,
		Time:          r.Time,
		Volatility:    r.Volatility,
		Paths:         r.Paths,
		Steps:         steps,
		DividendYield: r.DividendYield,
		Seed:          r.Seed,
	}
}
