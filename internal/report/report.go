// Package report assembles and serializes the immutable result of one
// simulation run. The JSON layout is the tool's stable snapshot format and
// must not change shape.
package report

import (
	"strings"

	"qdrift-go/internal/fragility"
	"qdrift-go/internal/metrics"
	"qdrift-go/internal/model"
)

// Distribution is the exported outcome tally. The keys follow the snapshot
// format: collapsed-low trials under "0_fail", collapsed-high under
// "1_pass".
type Distribution struct {
	Fail int `json:"0_fail"`
	Pass int `json:"1_pass"`
}

// Metrics is the exported statistics block of a snapshot.
type Metrics struct {
	Entropy      float64      `json:"entropy"`
	Bias         float64      `json:"bias"`
	Distribution Distribution `json:"distribution"`
}

// Report is the complete output of one run. Assembled once, never mutated.
type Report struct {
	Simulations int     `json:"simulations"`
	NoiseLevel  float64 `json:"noise_level"`
	Seed        *int64  `json:"seed"`
	Metrics     Metrics `json:"metrics"`
	Status      string  `json:"status"`

	// Verdict carries the tier for exit-code and rendering decisions; the
	// exported status string already embeds it.
	Verdict fragility.Verdict `json:"-"`
}

// New assembles a report from a finished run.
func New(cfg model.RunConfig, dist metrics.Distribution, entropy, bias float64, verdict fragility.Verdict) *Report {
	return &Report{
		Simulations: cfg.Simulations,
		NoiseLevel:  cfg.Noise,
		Seed:        cfg.Seed,
		Metrics: Metrics{
			Entropy:      entropy,
			Bias:         bias,
			Distribution: Distribution{Fail: dist.Fail, Pass: dist.Pass},
		},
		Status:  verdict.String(),
		Verdict: verdict,
	}
}

// restoreVerdict rebuilds the unexported verdict from the status string of
// a loaded snapshot.
func (r *Report) restoreVerdict() {
	tier, message, ok := strings.Cut(r.Status, ": ")
	if !ok {
		return
	}
	r.Verdict = fragility.Verdict{Tier: fragility.Tier(tier), Message: message}
}
