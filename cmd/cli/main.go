package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"option-pricer/internal/config"
	"option-pricer/internal/lattice"
	"option-pricer/internal/model"
	"option-pricer/internal/montecarlo"
	"option-pricer/internal/payoff"
	"option-pricer/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "lattice":
		cmdLattice(os.Args[2:])
	case "montecarlo":
		cmdMonteCarlo(os.Args[2:])
	case "prompt":
		cmdPrompt()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli lattice --spot 100 --strike 100 --rate 0.05 --time 1 --vol 0.2 --steps 200 --kind call --exercise european")
	fmt.Println("  cli montecarlo --spot 100 --rate 0.05 --time 1 --vol 0.2 --paths 50000 --steps 252 --seed 42 --payoff 'max(terminal - 100, 0)'")
	fmt.Println("  cli prompt")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - payoff expressions reference terminal, mean, highest, lowest, spot and path")
	fmt.Println("  - omit --seed for a non-deterministic run")
	fmt.Println("  - montecarlo --paths-out writes the simulated matrix as CSV")
}

func cmdLattice(args []string) {
	fs := flag.NewFlagSet("lattice", flag.ExitOnError)
	spot := fs.Float64("spot", 100, "Spot price")
	strike := fs.Float64("strike", 100, "Strike price")
	rate := fs.Float64("rate", 0.05, "Continuously compounded risk-free rate")
	timeYears := fs.Float64("time", 1, "Time to maturity in years")
	vol := fs.Float64("vol", 0.2, "Annualized volatility")
	steps := fs.Int("steps", 200, "Number of tree steps")
	div := fs.Float64("dividend", 0, "Continuous dividend yield")
	kind := fs.String("kind", "call", "Option kind: call or put")
	exercise := fs.String("exercise", "european", "Exercise style: european or american")
	_ = fs.Parse(args)

	params := model.LatticeParams{
		Spot:          *spot,
		Strike:        *strike,
		Rate:          *rate,
		Time:          *timeYears,
		Volatility:    *vol,
		Steps:         *steps,
		DividendYield: *div,
		OptionKind:    model.OptionKind(*kind),
		Exercise:      model.ExerciseStyle(*exercise),
	}

	price, err := lattice.New().Price(params)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%s %s price (%d steps): %.6f\n", params.Exercise, params.OptionKind, params.Steps, price)
}

func cmdMonteCarlo(args []string) {
	fs := flag.NewFlagSet("montecarlo", flag.ExitOnError)
	spot := fs.Float64("spot", 100, "Spot price")
	rate := fs.Float64("rate", 0.05, "Continuously compounded risk-free rate")
	timeYears := fs.Float64("time", 1, "Time to maturity in years")
	vol := fs.Float64("vol", 0.2, "Annualized volatility")
	div := fs.Float64("dividend", 0, "Continuous dividend yield")
	paths := fs.Int("paths", 50000, "Number of simulated paths")
	steps := fs.Int("steps", 252, "Steps per path")
	seedStr := fs.String("seed", "", "Random seed (empty = non-deterministic)")
	payoffExpr := fs.String("payoff", "max(terminal - 100, 0)", "Payoff expression")
	pathsOut := fs.String("paths-out", "", "Optional CSV path for the simulated matrix")
	_ = fs.Parse(args)

	params := model.SimulationParams{
		Spot:          *spot,
		Rate:          *rate,
		Time:          *timeYears,
		Volatility:    *vol,
		Paths:         *paths,
		Steps:         *steps,
		DividendYield: *div,
	}
	if s := strings.TrimSpace(*seedStr); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "--seed must be an integer")
			os.Exit(2)
		}
		params.Seed = &seed
	}

	fn, err := payoff.NewPathExpression(*payoffExpr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sim := simulate.New()
	result, err := montecarlo.New(sim).Price(params, fn)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Estimated option price: %.6f (stderr %.6f, %d paths)\n", result.Price, result.StandardError, result.Paths)

	if *pathsOut != "" {
		// Rerun the same seeded simulation for the dump so the CSV matches
		// the priced batch. Unseeded runs dump a fresh batch.
		dump, err := sim.Paths(params)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := os.MkdirAll(filepath.Dir(*pathsOut), 0o755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := simulate.WritePathsCSV(*pathsOut, dump); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d paths to %s\n", len(dump), *pathsOut)
	}
}

// cmdPrompt collects the same fields interactively and prints the price.
func cmdPrompt() {
	defaults := config.Default().Defaults
	in := bufio.NewScanner(os.Stdin)

	payoffExpr := promptString(in, "Payoff expression (terminal, mean, highest, lowest, path)", defaults.PayoffExpr)
	params := model.SimulationParams{
		Spot:          promptFloat(in, "Spot price", defaults.Spot),
		Rate:          promptFloat(in, "Risk-free rate (continuous)", defaults.Rate),
		Time:          promptFloat(in, "Time to maturity (years)", defaults.Time),
		Volatility:    promptFloat(in, "Volatility", defaults.Volatility),
		Paths:         promptInt(in, "Number of paths", defaults.Paths),
		Steps:         promptInt(in, "Steps per path", defaults.Steps),
		DividendYield: promptFloat(in, "Dividend yield", defaults.DividendYield),
	}
	if s := promptString(in, "Random seed (blank = none)", ""); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed must be an integer")
			os.Exit(2)
		}
		params.Seed = &seed
	}

	fn, err := payoff.NewPathExpression(payoffExpr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result, err := montecarlo.New(simulate.New()).Price(params, fn)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Estimated option price: %.4f\n", result.Price)
}

func promptString(in *bufio.Scanner, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !in.Scan() {
		return def
	}
	s := strings.TrimSpace(in.Text())
	if s == "" {
		return def
	}
	return s
}

func promptFloat(in *bufio.Scanner, label string, def float64) float64 {
	s := promptString(in, label, strconv.FormatFloat(def, 'g', -1, 64))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s must be a number\n", label)
		os.Exit(2)
	}
	return v
}

func promptInt(in *bufio.Scanner, label string, def int) int {
	s := promptString(in, label, strconv.Itoa(def))
	v, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s must be an integer\n", label)
		os.Exit(2)
	}
	return v
}
