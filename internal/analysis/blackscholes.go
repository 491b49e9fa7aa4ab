package analysis

import (
	"math"

	"option-pricer/internal/model"
)

// BlackScholes is the closed-form continuous-time European price with a
// continuous dividend yield. It is the reference the binomial lattice
// converges to as steps grow; it is not a pricing mode of its own.
func BlackScholes(kind model.OptionKind, spot, strike, rate, dividendYield, time, volatility float64) float64 {
	if volatility <= 0 || time <= 0 {
		// Degenerate case: the forward is deterministic.
		forward := spot * math.Exp((rate-dividendYield)*time)
		return math.Exp(-rate*time) * kind.Intrinsic(forward, strike)
	}

	sqrtT := math.Sqrt(time)
	d1 := (math.Log(spot/strike) + (rate-dividendYield+0.5*volatility*volatility)*time) / (volatility * sqrtT)
	d2 := d1 - volatility*sqrtT

	discS := spot * math.Exp(-dividendYield*time)
	discK := strike * math.Exp(-rate*time)

	if kind == model.Call {
		return discS*normCDF(d1) - discK*normCDF(d2)
	}
	return discK*normCDF(-d2) - discS*normCDF(-d1)
}

func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
