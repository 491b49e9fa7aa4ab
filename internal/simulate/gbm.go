package simulate

import (
	"math"
	"runtime"
	"sync"
	"time"

	"option-pricer/internal/model"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulator generates geometric Brownian motion price paths.
//
// Every call owns its random state: a seeded run derives one sub-stream per
// path (seed + path index), so output is bit-identical regardless of how many
// workers run, and concurrent pricing calls never share an RNG.
type Simulator struct {
	// Workers caps the fan-out. 0 means GOMAXPROCS.
	Workers int
}

func New() *Simulator { return &Simulator{} }

// Paths simulates params.Paths independent trajectories of params.Steps
// increments each. The returned matrix always has shape paths x (steps+1)
// with column 0 equal to spot.
//
// The log-price update is exact for GBM: there is no discretization bias
// beyond the normal-increment assumption itself.
func (s *Simulator) Paths(params model.SimulationParams) ([]model.PricePath, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	dt := params.Time / float64(params.Steps)
	drift := (params.Rate - params.DividendYield - 0.5*params.Volatility*params.Volatility) * dt
	diffusion := params.Volatility * math.Sqrt(dt)
	base := baseSeed(params.Seed)

	paths := make([]model.PricePath, params.Paths)

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > params.Paths {
		workers = params.Paths
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < params.Paths; i += workers {
				paths[i] = simulateOne(params, base+uint64(i), drift, diffusion)
			}
		}(w)
	}
	wg.Wait()

	return paths, nil
}

func simulateOne(params model.SimulationParams, seed uint64, drift, diffusion float64) model.PricePath {
	shock := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	p := make(model.PricePath, params.Steps+1)
	p[0] = params.Spot
	for step := 1; step <= params.Steps; step++ {
		p[step] = p[step-1] * math.Exp(drift+diffusion*shock.Rand())
	}
	return p
}

func baseSeed(seed *int64) uint64 {
	if seed != nil {
		return uint64(*seed)
	}
	return uint64(time.Now().UnixNano())
}
