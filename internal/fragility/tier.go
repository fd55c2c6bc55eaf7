// Package fragility classifies a run's drift entropy into a status tier.
package fragility

import "math"

// Tier is the discrete stability classification of a run.
type Tier string

const (
	TierStable   Tier = "STABLE"
	TierWarning  Tier = "WARNING"
	TierCritical Tier = "CRITICAL"
)

// Verdict pairs a tier with its human-readable message.
type Verdict struct {
	Tier    Tier
	Message string
}

// String renders the verdict the way the report serializes it, e.g.
// "CRITICAL: High structural fragility detected."
func (v Verdict) String() string {
	return string(v.Tier) + ": " + v.Message
}

// ExitCode maps the tier to a process exit code. Only CRITICAL signals
// failure to the caller.
func (v Verdict) ExitCode() int {
	if v.Tier == TierCritical {
		return 1
	}
	return 0
}

// rule maps an exclusive lower entropy bound to a tier. Rules are checked
// in order; the first bound the entropy strictly exceeds wins, so boundary
// values fall into the lower tier.
type rule struct {
	above   float64
	tier    Tier
	message string
}

var rules = []rule{
	{0.8, TierCritical, "High structural fragility detected."},
	{0.4, TierWarning, "Moderate drift detected."},
	{math.Inf(-1), TierStable, "System appears robust."},
}

// Classify maps a drift entropy value to its verdict.
func Classify(entropy float64) Verdict {
	for _, r := range rules {
		if entropy > r.above {
			return Verdict{Tier: r.tier, Message: r.message}
		}
	}
	// unreachable: the last rule's bound is -Inf
	return Verdict{Tier: TierStable, Message: rules[len(rules)-1].message}
}
