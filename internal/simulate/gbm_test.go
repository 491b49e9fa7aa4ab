package simulate

import (
	"math"
	"testing"

	"option-pricer/internal/model"
)

func baseParams(seed int64) model.SimulationParams {
	return model.SimulationParams{
		Spot:       100,
		Rate:       0.05,
		Time:       1,
		Volatility: 0.2,
		Paths:      500,
		Steps:      12,
		Seed:       &seed,
	}
}

func TestMatrixShape(t *testing.T) {
	params := baseParams(7)
	paths, err := New().Paths(params)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if len(paths) != params.Paths {
		t.Fatalf("path count: got %d, want %d", len(paths), params.Paths)
	}
	for i, p := range paths {
		if len(p) != params.Steps+1 {
			t.Fatalf("path %d length: got %d, want %d", i, len(p), params.Steps+1)
		}
		if p[0] != params.Spot {
			t.Fatalf("path %d does not start at spot: %v", i, p[0])
		}
		for j, price := range p {
			if price <= 0 || math.IsNaN(price) {
				t.Fatalf("path %d step %d not a positive price: %v", i, j, price)
			}
		}
	}
}

func TestSeededReproducibility(t *testing.T) {
	a, err := New().Paths(baseParams(42))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := New().Paths(baseParams(42))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("seeded runs differ at path %d step %d: %v vs %v", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestWorkerCountDoesNotChangeOutput(t *testing.T) {
	// The per-path sub-stream makes output independent of parallelism.
	serial := &Simulator{Workers: 1}
	parallel := &Simulator{Workers: 8}

	a, err := serial.Paths(baseParams(99))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := parallel.Paths(baseParams(99))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("worker count changed output at path %d step %d", i, j)
			}
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a, err := New().Paths(baseParams(1))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := New().Paths(baseParams(2))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if a[0][len(a[0])-1] == b[0][len(b[0])-1] {
		t.Fatalf("different seeds produced an identical first path terminal")
	}
}

func TestZeroVolatilityIsDeterministicForward(t *testing.T) {
	params := baseParams(5)
	params.Volatility = 0
	params.DividendYield = 0.01
	params.Paths = 3

	paths, err := New().Paths(params)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	dt := params.Time / float64(params.Steps)
	for _, p := range paths {
		for j := 1; j <= params.Steps; j++ {
			want := params.Spot * math.Exp((params.Rate-params.DividendYield)*dt*float64(j))
			if math.Abs(p[j]-want) > 1e-9 {
				t.Fatalf("zero-vol path deviates from forward at step %d: got %v want %v", j, p[j], want)
			}
		}
	}
}

func TestTerminalMeanNearForward(t *testing.T) {
	// Under the risk-neutral drift the expected terminal price is the
	// forward spot*exp((r-q)T). Loose tolerance: plain Monte Carlo.
	params := baseParams(42)
	params.Paths = 20000
	params.Steps = 4

	paths, err := New().Paths(params)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	sum := 0.0
	for _, p := range paths {
		sum += p.Terminal()
	}
	mean := sum / float64(len(paths))
	forward := params.Spot * math.Exp(params.Rate*params.Time)
	if math.Abs(mean-forward) > 0.5 {
		t.Fatalf("terminal mean %v too far from forward %v", mean, forward)
	}
}

func TestValidationRejected(t *testing.T) {
	params := baseParams(1)
	params.Paths = 0
	if _, err := New().Paths(params); err == nil {
		t.Fatalf("expected validation error for zero paths")
	}
}
