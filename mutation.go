package main

import (
	"math/rand"
)

// Radius is drawn from [1, MaxShapeRadius] and alpha from
// [MinShapeAlpha, MinShapeAlpha+AlphaSpan).
const (
	MaxShapeRadius = 50
	MinShapeAlpha  = 20
	AlphaSpan      = 100
)

// Mutator applies random insert/delete edits to candidates for a fixed
// canvas and shape kind.
type Mutator struct {
	Kind   ShapeKind
	Width  int
	Height int
}

// Mutate returns an edited copy of c; c itself is left untouched.
//
// Each step either inserts a fresh random shape at the head (p=1/2) or
// deletes one uniformly chosen shape if there is any. After every step a
// second coin decides whether to keep going, so the number of steps is
// geometric with mean 2.
func (m Mutator) Mutate(c Candidate, rng *rand.Rand) Candidate {
	out := c.Clone()
	for {
		if rng.Intn(2) == 0 {
			out = out.pushFront(m.randomShape(rng))
		} else if len(out) != 0 {
			out = out.removeAt(rng.Intn(len(out)))
		}
		if rng.Intn(2) != 0 {
			return out
		}
	}
}

// randomShape draws position, radius and colour in that order; the order is
// part of the reproducibility contract for seeded runs.
func (m Mutator) randomShape(rng *rand.Rand) Shape {
	x := rng.Intn(m.Width)
	y := rng.Intn(m.Height)
	radius := rng.Intn(MaxShapeRadius) + 1
	c := Color{
		A: uint8(rng.Intn(AlphaSpan) + MinShapeAlpha),
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
	return NewShape(m.Kind, x, y, radius, c)
}
