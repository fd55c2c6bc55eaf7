package model

// Default run parameters, shared by the CLI flags, the YAML config and the
// HTTP request binding.
const (
	DefaultSimulations = 1000
	DefaultNoise       = 0.3
)

// RunConfig holds the inputs for one simulation run. Immutable once handed
// to the runner.
type RunConfig struct {
	Simulations int
	Noise       float64
	Seed        *int64 // nil means non-deterministic
}

// Validate checks the run invariants in order: trial count first, then
// noise range. Returned errors satisfy errors.Is against the package
// sentinels.
func (c RunConfig) Validate() error {
	if c.Simulations <= 0 {
		return ErrSimulations
	}
	if c.Noise < 0.0 || c.Noise > 1.0 {
		return ErrNoise
	}
	return nil
}
