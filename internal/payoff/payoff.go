package payoff

import (
	"fmt"

	"option-pricer/internal/model"
)

// Function maps one simulated price path to a scalar payoff.
// Implementations must be callable once per path and must not mutate shared
// state between invocations; the estimator relies on per-path independence.
type Function interface {
	Name() string
	Evaluate(path model.PricePath) (float64, error)
}

// BatchFunction scores a whole batch of paths at once. A Function may
// additionally implement it to take over the batch loop; the estimator then
// checks that the output count matches the path count.
type BatchFunction interface {
	EvaluateBatch(paths []model.PricePath) ([]float64, error)
}

// TerminalCall pays max(terminal - strike, 0).
type TerminalCall struct {
	Strike float64
}

func (f TerminalCall) Name() string { return "terminal_call" }

func (f TerminalCall) Evaluate(p model.PricePath) (float64, error) {
	return model.Call.Intrinsic(p.Terminal(), f.Strike), nil
}

// TerminalPut pays max(strike - terminal, 0).
type TerminalPut struct {
	Strike float64
}

func (f TerminalPut) Name() string { return "terminal_put" }

func (f TerminalPut) Evaluate(p model.PricePath) (float64, error) {
	return model.Put.Intrinsic(p.Terminal(), f.Strike), nil
}

// Apply scores every path with fn, one value per path.
// Any per-path failure is fatal to the whole batch: skipping paths would bias
// the Monte Carlo average.
func Apply(fn Function, paths []model.PricePath) ([]float64, error) {
	if bf, ok := fn.(BatchFunction); ok {
		return bf.EvaluateBatch(paths)
	}
	out := make([]float64, len(paths))
	for i, p := range paths {
		v, err := fn.Evaluate(p)
		if err != nil {
			return nil, fmt.Errorf("payoff %q on path %d: %w", fn.Name(), i, err)
		}
		out[i] = v
	}
	return out, nil
}
