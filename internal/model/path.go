package model

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PricePath is one simulated trajectory of the underlying: steps+1 prices,
// index 0 = spot, last index = terminal price. Order matters; payoffs may
// depend on the path shape (running maximum, average, ...).
type PricePath []float64

// Spot is the initial price of the path.
func (p PricePath) Spot() float64 { return p[0] }

// Terminal is the final price of the path.
func (p PricePath) Terminal() float64 { return p[len(p)-1] }

// Mean is the arithmetic average price along the path.
func (p PricePath) Mean() float64 { return stat.Mean(p, nil) }

// Max is the running maximum over the whole path.
func (p PricePath) Max() float64 { return floats.Max(p) }

// Min is the running minimum over the whole path.
func (p PricePath) Min() float64 { return floats.Min(p) }
