package payoff

import (
	"errors"
	"fmt"
	"strings"

	"option-pricer/internal/model"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// PathExpression evaluates a user-supplied expression once per path.
//
// The expression is compiled against a closed environment of path statistics
// plus expr's arithmetic builtins (max, min, abs, ...); user text never
// reaches a general-purpose evaluator, and unknown identifiers are rejected
// at compile time.
//
// Examples:
//
//	max(terminal - 100, 0)   European call
//	max(100 - terminal, 0)   European put
//	max(mean - 100, 0)       Asian call on the path average
//	max(highest - 100, 0)    lookback call on the running maximum
type PathExpression struct {
	source  string
	program *vm.Program
}

// NewPathExpression compiles source into a payoff function.
func NewPathExpression(source string) (*PathExpression, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errors.New("payoff expression is empty")
	}
	program, err := expr.Compile(source, expr.Env(exprEnv(nil)), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("compile payoff expression: %w", err)
	}
	return &PathExpression{source: source, program: program}, nil
}

func (f *PathExpression) Name() string { return "expression" }

// Source returns the expression text as compiled (trimmed).
func (f *PathExpression) Source() string { return f.source }

func (f *PathExpression) Evaluate(p model.PricePath) (float64, error) {
	out, err := expr.Run(f.program, exprEnv(p))
	if err != nil {
		return 0, fmt.Errorf("evaluate payoff expression: %w", err)
	}
	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("payoff expression returned %T, want a number", out)
	}
}

// exprEnv is the whole whitelist visible to payoff expressions.
// A nil path yields the compile-time prototype.
func exprEnv(p model.PricePath) map[string]interface{} {
	if len(p) == 0 {
		p = model.PricePath{1}
	}
	return map[string]interface{}{
		"path":     []float64(p),
		"spot":     p.Spot(),
		"terminal": p.Terminal(),
		"mean":     p.Mean(),
		"highest":  p.Max(),
		"lowest":   p.Min(),
	}
}
