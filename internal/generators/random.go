// Package generators produces random numbers and money strings for test
// payloads.
//
// The two-argument forms take a lower bound and a span: RandomIntBetween(a, b)
// draws from [a, a+b). A zero span falls back to the one-argument form, so
// RandomIntBetween(a, 0) draws from [0, a).
package generators

import (
	"math/rand/v2"
	"sync"
)

// Generator draws values from an injected random source.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Generator backed by r. A nil r uses a randomly seeded source.
func New(r *rand.Rand) *Generator {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rnd: r}
}

// Int returns an integer in [0, max). Non-positive max yields 0.
func (g *Generator) Int(max int) int {
	if max <= 0 {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.IntN(max)
}

// IntBetween returns an integer in [min, min+span).
func (g *Generator) IntBetween(min, span int) int {
	if span == 0 {
		return g.Int(min)
	}
	return min + g.Int(span)
}

// Float returns a float in [0, max). Non-positive max yields 0.
func (g *Generator) Float(max float64) float64 {
	if max <= 0 {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64() * max
}

// FloatBetween returns a float in [min, min+span).
func (g *Generator) FloatBetween(min, span float64) float64 {
	if span == 0 {
		return g.Float(min)
	}
	return min + g.Float(span)
}

var defaultGenerator = New(nil)

// RandomInt draws from [0, max) using the package generator.
func RandomInt(max int) int {
	return defaultGenerator.Int(max)
}

// RandomIntBetween draws from [min, min+span) using the package generator.
func RandomIntBetween(min, span int) int {
	return defaultGenerator.IntBetween(min, span)
}

// RandomFloat draws from [0, max) using the package generator.
func RandomFloat(max float64) float64 {
	return defaultGenerator.Float(max)
}

// RandomFloatBetween draws from [min, min+span) using the package generator.
func RandomFloatBetween(min, span float64) float64 {
	return defaultGenerator.FloatBetween(min, span)
}
