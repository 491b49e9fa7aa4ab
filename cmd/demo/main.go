package main

import (
	"flag"
	"fmt"

	"option-pricer/internal/analysis"
	"option-pricer/internal/lattice"
	"option-pricer/internal/model"
	"option-pricer/internal/montecarlo"
	"option-pricer/internal/payoff"
	"option-pricer/internal/simulate"
)

// Demo:
// - Price the reference CRR scenario (European call, 200 steps)
// - Show the early-exercise premium of an American put
// - Price an Asian call via Monte Carlo
// - Print a lattice-vs-closed-form convergence table
func main() {
	paths := flag.Int("paths", 50000, "Monte Carlo paths for the Asian call")
	flag.Parse()

	engine := lattice.New()

	euro := model.LatticeParams{
		Spot:       100,
		Strike:     100,
		Rate:       0.05,
		Time:       1,
		Volatility: 0.2,
		Steps:      200,
		OptionKind: model.Call,
		Exercise:   model.European,
	}
	price, err := engine.Price(euro)
	if err != nil {
		panic(err)
	}
	fmt.Printf("European call price (CRR, 200 steps): %.4f\n", price)

	amer := euro
	amer.OptionKind = model.Put
	amer.Exercise = model.American
	amerPrice, err := engine.Price(amer)
	if err != nil {
		panic(err)
	}
	euroPut := amer
	euroPut.Exercise = model.European
	euroPutPrice, err := engine.Price(euroPut)
	if err != nil {
		panic(err)
	}
	fmt.Printf("American put %.4f vs European put %.4f (premium %.4f)\n", amerPrice, euroPutPrice, amerPrice-euroPutPrice)

	seed := int64(42)
	simParams := model.SimulationParams{
		Spot:       100,
		Rate:       0.05,
		Time:       1,
		Volatility: 0.2,
		Paths:      *paths,
		Steps:      252,
		Seed:       &seed,
	}
	asian, err := payoff.NewPathExpression("max(mean - 100, 0)")
	if err != nil {
		panic(err)
	}
	result, err := montecarlo.New(simulate.New()).Price(simParams, asian)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Asian call via Monte Carlo: %.4f (stderr %.4f)\n", result.Price, result.StandardError)

	rows, err := analysis.LatticeConvergence(euro, []int{10, 25, 50, 100, 200, 400})
	if err != nil {
		panic(err)
	}
	fmt.Printf("\n%-8s %-12s %-12s %-10s\n", "steps", "lattice", "analytic", "abs err")
	for _, r := range rows {
		fmt.Printf("%-8d %-12.6f %-12.6f %-10.6f\n", r.Steps, r.Price, r.Analytic, r.AbsError)
	}
}
