package model

import (
	"errors"
	"testing"
)

func validLattice() LatticeParams {
	return LatticeParams{
		Spot:       100,
		Strike:     100,
		Rate:       0.05,
		Time:       1,
		Volatility: 0.2,
		Steps:      200,
		OptionKind: Call,
		Exercise:   European,
	}
}

func TestLatticeParamsValidation(t *testing.T) {
	if err := validLattice().Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*LatticeParams)
		field  string
	}{
		{"zero steps", func(p *LatticeParams) { p.Steps = 0 }, "steps"},
		{"negative spot", func(p *LatticeParams) { p.Spot = -1 }, "spot"},
		{"zero strike", func(p *LatticeParams) { p.Strike = 0 }, "strike"},
		{"negative vol", func(p *LatticeParams) { p.Volatility = -0.1 }, "volatility"},
		{"zero time", func(p *LatticeParams) { p.Time = 0 }, "time"},
		{"bad kind", func(p *LatticeParams) { p.OptionKind = "straddle" }, "option_kind"},
		{"bad exercise", func(p *LatticeParams) { p.Exercise = "bermudan" }, "exercise"},
	}

	for _, tc := range cases {
		p := validLattice()
		tc.mutate(&p)
		err := p.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: expected ValidationError, got %T", tc.name, err)
		}
		if vErr.Field != tc.field {
			t.Fatalf("%s: field=%q, want %q", tc.name, vErr.Field, tc.field)
		}
	}
}

func TestSimulationParamsValidation(t *testing.T) {
	p := SimulationParams{Spot: 100, Rate: 0.05, Time: 1, Volatility: 0.2, Paths: 1000, Steps: 1}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*SimulationParams)
	}{
		{"zero spot", func(p *SimulationParams) { p.Spot = 0 }},
		{"negative vol", func(p *SimulationParams) { p.Volatility = -0.2 }},
		{"zero time", func(p *SimulationParams) { p.Time = 0 }},
		{"zero paths", func(p *SimulationParams) { p.Paths = 0 }},
		{"negative steps", func(p *SimulationParams) { p.Steps = -1 }},
	}
	for _, tc := range cases {
		bad := p
		tc.mutate(&bad)
		var vErr *ValidationError
		if err := bad.Validate(); !errors.As(err, &vErr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
}

func TestIntrinsic(t *testing.T) {
	if got := Call.Intrinsic(110, 100); got != 10 {
		t.Fatalf("call intrinsic: got %v", got)
	}
	if got := Call.Intrinsic(90, 100); got != 0 {
		t.Fatalf("call intrinsic out of the money: got %v", got)
	}
	if got := Put.Intrinsic(90, 100); got != 10 {
		t.Fatalf("put intrinsic: got %v", got)
	}
	if got := Put.Intrinsic(110, 100); got != 0 {
		t.Fatalf("put intrinsic out of the money: got %v", got)
	}
}

func TestPricePathStatistics(t *testing.T) {
	p := PricePath{100, 120, 80, 110}
	if p.Spot() != 100 || p.Terminal() != 110 {
		t.Fatalf("endpoints: spot=%v terminal=%v", p.Spot(), p.Terminal())
	}
	if p.Max() != 120 || p.Min() != 80 {
		t.Fatalf("extremes: max=%v min=%v", p.Max(), p.Min())
	}
	if p.Mean() != 102.5 {
		t.Fatalf("mean: got %v", p.Mean())
	}
}
