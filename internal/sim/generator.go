// Package sim runs the noisy collapse simulation: a Bernoulli outcome
// generator damped by the configured noise level, and the runner that
// drives it into a report.
package sim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"qdrift-go/internal/model"
)

// BaseProbability is the unperturbed pass probability of a single trial.
const BaseProbability = 0.9

// Generator produces one binary outcome per trial by collapsing a
// noise-damped Bernoulli draw.
type Generator struct {
	dist distuv.Bernoulli
}

// NewGenerator builds a generator for the given noise level over an
// explicit random source. Each run owns its source, so seeded runs
// reproduce exactly and concurrent runs never interfere.
func NewGenerator(noise float64, src rand.Source) *Generator {
	p := BaseProbability * (1.0 - noise)
	// clamp to [0, 1]; unreachable for validated noise
	if p < 0.0 {
		p = 0.0
	} else if p > 1.0 {
		p = 1.0
	}
	return &Generator{dist: distuv.Bernoulli{P: p, Src: src}}
}

// EffectiveProbability returns the damped pass probability.
func (g *Generator) EffectiveProbability() float64 {
	return g.dist.P
}

// Collapse draws one outcome, consuming a single value from the source.
func (g *Generator) Collapse() model.Outcome {
	if g.dist.Rand() == 1 {
		return model.OutcomePass
	}
	return model.OutcomeFail
}
