package sim

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"qdrift-go/internal/fragility"
	"qdrift-go/internal/metrics"
	"qdrift-go/internal/model"
	"qdrift-go/internal/report"
)

// Runner orchestrates one simulation run: validate, generate, measure,
// classify, assemble.
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a new runner. A nil logger disables logging.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Run executes cfg and returns the assembled report. It fails before any
// generation when cfg violates its invariants; once validation passes the
// run cannot fail.
func (r *Runner) Run(cfg model.RunConfig) (*report.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := NewGenerator(cfg.Noise, newSource(cfg.Seed))

	r.logger.Debug("simulating probabilistic state collapse",
		zap.Int("simulations", cfg.Simulations),
		zap.Float64("noise", cfg.Noise),
		zap.Float64("effective_probability", gen.EffectiveProbability()),
		zap.Bool("deterministic", cfg.Seed != nil))

	states := make([]model.Outcome, cfg.Simulations)
	for i := range states {
		states[i] = gen.Collapse()
	}

	dist := metrics.Tally(states)
	entropy := metrics.EntropyOf(dist)
	bias := metrics.BiasOf(dist)
	verdict := fragility.Classify(entropy)

	r.logger.Info("run complete",
		zap.Int("fail", dist.Fail),
		zap.Int("pass", dist.Pass),
		zap.Float64("entropy", entropy),
		zap.Float64("bias", bias),
		zap.String("tier", string(verdict.Tier)))

	return report.New(cfg, dist, entropy, bias, verdict), nil
}

// newSource builds the run-local random source. A nil seed yields a
// non-deterministic source.
func newSource(seed *int64) rand.Source {
	if seed != nil {
		return rand.NewPCG(uint64(*seed), uint64(*seed))
	}
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}
