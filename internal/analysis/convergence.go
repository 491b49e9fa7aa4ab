package analysis

import (
	"option-pricer/internal/lattice"
	"option-pricer/internal/model"
)

// ConvergenceRow is one step count's lattice price against the closed form.
type ConvergenceRow struct {
	Steps    int
	Price    float64
	Analytic float64
	AbsError float64
}

// LatticeConvergence prices the same European option across a ladder of step
// counts. American parameters are rejected by the caller's own usage; the
// closed-form column only exists for European payoffs.
func LatticeConvergence(params model.LatticeParams, stepLadder []int) ([]ConvergenceRow, error) {
	engine := lattice.New()
	analytic := BlackScholes(params.OptionKind, params.Spot, params.Strike, params.Rate, params.DividendYield, params.Time, params.Volatility)

	rows := make([]ConvergenceRow, 0, len(stepLadder))
	for _, steps := range stepLadder {
		p := params
		p.Steps = steps
		price, err := engine.Price(p)
		if err != nil {
			return nil, err
		}
		diff := price - analytic
		if diff < 0 {
			diff = -diff
		}
		rows = append(rows, ConvergenceRow{
			Steps:    steps,
			Price:    price,
			Analytic: analytic,
			AbsError: diff,
		})
	}
	return rows, nil
}
