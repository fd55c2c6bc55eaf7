// Package metrics computes the aggregate statistics of an outcome
// sequence: Shannon entropy of the empirical 0/1 distribution and collapse
// bias, the deviation of the pass rate from perfect equilibrium.
//
// All functions are pure and deterministic over their inputs.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"qdrift-go/internal/model"
)

// Distribution holds the tallied outcome counts for a run.
type Distribution struct {
	Fail int
	Pass int
}

// Total returns the number of tallied outcomes.
func (d Distribution) Total() int {
	return d.Fail + d.Pass
}

// Tally counts collapsed-low and collapsed-high outcomes in states.
func Tally(states []model.Outcome) Distribution {
	var d Distribution
	for _, s := range states {
		if s == model.OutcomePass {
			d.Pass++
		} else {
			d.Fail++
		}
	}
	return d
}

// Entropy returns the Shannon entropy in bits of the empirical binary
// distribution of states. An empty sequence has zero entropy. For a binary
// alphabet the result lies in [0, 1]: 0 when every trial collapsed the same
// way, 1 when the split is perfectly balanced.
func Entropy(states []model.Outcome) float64 {
	return EntropyOf(Tally(states))
}

// EntropyOf computes entropy from an already-tallied distribution.
func EntropyOf(d Distribution) float64 {
	total := d.Total()
	if total == 0 {
		return 0.0
	}
	p := []float64{
		float64(d.Fail) / float64(total),
		float64(d.Pass) / float64(total),
	}
	// stat.Entropy accumulates in nats; the report format is bits.
	return stat.Entropy(p) / math.Ln2
}

// Bias returns the absolute deviation of the empirical pass rate from 0.5.
// An empty sequence has zero bias. The result lies in [0, 0.5]: 0 for a
// balanced split, 0.5 when every trial collapsed the same way.
func Bias(states []model.Outcome) float64 {
	return BiasOf(Tally(states))
}

// BiasOf computes collapse bias from an already-tallied distribution.
func BiasOf(d Distribution) float64 {
	total := d.Total()
	if total == 0 {
		return 0.0
	}
	return math.Abs(float64(d.Pass)/float64(total) - 0.5)
}
