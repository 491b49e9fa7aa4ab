package lattice

import (
	"fmt"
	"math"

	"option-pricer/internal/model"
)

// Engine prices options on a Cox-Ross-Rubinstein recombining binomial tree.
type Engine struct{}

func New() *Engine { return &Engine{} }

// CalibrationError means the derived risk-neutral probability fell outside
// [0,1]: the volatility/rate/step combination is inconsistent with
// arbitrage-free pricing at this discretization. Raising more steps usually
// fixes it. The probability is reported, never clamped.
type CalibrationError struct {
	Prob float64
}

func (e *CalibrationError) Error() string {
	return fmt.Sprintf("risk-neutral probability %.6f outside [0, 1]; adjust inputs or steps", e.Prob)
}

// Price computes the present value of the option by backward induction.
//
// The lattice is never materialized: only the current level's value vector is
// kept, and node prices are recomputed from spot*up^j*down^(step-j), so memory
// is O(steps). Very large step counts lose precision through the repeated
// power terms; that is a known sensitivity of the closed-form exponent form.
func (e *Engine) Price(params model.LatticeParams) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}

	dt := params.Time / float64(params.Steps)
	up := math.Exp(params.Volatility * math.Sqrt(dt))
	down := 1 / up
	growth := math.Exp((params.Rate - params.DividendYield) * dt)
	prob := (growth - down) / (up - down)

	// NaN arises when up == down (zero volatility makes the tree degenerate);
	// that is a calibration failure like any out-of-range probability.
	if math.IsNaN(prob) || prob < 0 || prob > 1 {
		return 0, &CalibrationError{Prob: prob}
	}

	disc := math.Exp(-params.Rate * dt)
	n := params.Steps

	// Terminal payoffs.
	values := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		price := params.Spot * math.Pow(up, float64(j)) * math.Pow(down, float64(n-j))
		values[j] = params.OptionKind.Intrinsic(price, params.Strike)
	}

	if params.Exercise == model.European {
		// Pure risk-neutral expectation: discount-and-mix adjacent values,
		// collapsing the vector by one element per round.
		for len(values) > 1 {
			for j := 0; j < len(values)-1; j++ {
				values[j] = disc * (prob*values[j+1] + (1-prob)*values[j])
			}
			values = values[:len(values)-1]
		}
		return values[0], nil
	}

	// American: compare continuation against immediate exercise at every
	// interior node, every step.
	for step := n - 1; step >= 0; step-- {
		for j := 0; j <= step; j++ {
			continuation := disc * (prob*values[j+1] + (1-prob)*values[j])
			nodePrice := params.Spot * math.Pow(up, float64(j)) * math.Pow(down, float64(step-j))
			exercise := params.OptionKind.Intrinsic(nodePrice, params.Strike)
			values[j] = math.Max(continuation, exercise)
		}
		values = values[:step+1]
	}

	return values[0], nil
}
