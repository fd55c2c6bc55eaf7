// Package model defines the shared domain types for a drift analysis run.
package model

// Outcome is a single binary trial result: the simulated qubit collapsed
// low (fail) or high (pass).
type Outcome uint8

const (
	OutcomeFail Outcome = 0
	OutcomePass Outcome = 1
)

// String returns the ket notation used in rendered output.
func (o Outcome) String() string {
	if o == OutcomePass {
		return "|1>"
	}
	return "|0>"
}
