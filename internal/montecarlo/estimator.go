package montecarlo

import (
	"errors"
	"fmt"
	"math"

	"option-pricer/internal/model"
	"option-pricer/internal/payoff"
	"option-pricer/internal/simulate"

	"gonum.org/v1/gonum/stat"
)

// Estimator prices an option by averaging discounted simulated payoffs.
type Estimator struct {
	sim *simulate.Simulator
}

func New(sim *simulate.Simulator) *Estimator {
	if sim == nil {
		sim = simulate.New()
	}
	return &Estimator{sim: sim}
}

// Result is the outcome of one pricing call.
type Result struct {
	Price         float64
	StandardError float64
	Discount      float64
	Paths         int
}

// PayoffShapeError means a payoff function returned a number of values
// different from the path count. No partial average is ever returned.
type PayoffShapeError struct {
	Want int
	Got  int
}

func (e *PayoffShapeError) Error() string {
	return fmt.Sprintf("payoff function returned %d values for %d paths", e.Got, e.Want)
}

// Price simulates, scores every path with fn, discounts and averages.
// A single call is a pure function of its inputs and RNG draws: no retries,
// no shared state.
func (e *Estimator) Price(params model.SimulationParams, fn payoff.Function) (*Result, error) {
	if fn == nil {
		return nil, errors.New("payoff function is nil")
	}

	paths, err := e.sim.Paths(params)
	if err != nil {
		return nil, err
	}

	scores, err := payoff.Apply(fn, paths)
	if err != nil {
		return nil, err
	}
	if len(scores) != len(paths) {
		return nil, &PayoffShapeError{Want: len(paths), Got: len(scores)}
	}

	discount := math.Exp(-params.Rate * params.Time)
	mean := stat.Mean(scores, nil)

	stderr := 0.0
	if len(scores) > 1 {
		stderr = discount * stat.StdDev(scores, nil) / math.Sqrt(float64(len(scores)))
	}

	return &Result{
		Price:         discount * mean,
		StandardError: stderr,
		Discount:      discount,
		Paths:         len(scores),
	}, nil
}
