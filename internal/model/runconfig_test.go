package model

import (
	"errors"
	"testing"
)

func TestRunConfigValidate(t *testing.T) {
	seed := int64(42)

	tests := []struct {
		name    string
		cfg     RunConfig
		wantErr error
	}{
		{"defaults valid", RunConfig{Simulations: DefaultSimulations, Noise: DefaultNoise}, nil},
		{"seeded valid", RunConfig{Simulations: 1, Noise: 0.0, Seed: &seed}, nil},
		{"noise upper bound valid", RunConfig{Simulations: 10, Noise: 1.0}, nil},
		{"zero simulations", RunConfig{Simulations: 0, Noise: 0.3}, ErrSimulations},
		{"negative simulations", RunConfig{Simulations: -5, Noise: 0.3}, ErrSimulations},
		{"noise below range", RunConfig{Simulations: 10, Noise: -0.01}, ErrNoise},
		{"noise above range", RunConfig{Simulations: 10, Noise: 1.01}, ErrNoise},
		// Trial count is checked before noise.
		{"simulations checked first", RunConfig{Simulations: 0, Noise: 2.0}, ErrSimulations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	if got := OutcomeFail.String(); got != "|0>" {
		t.Errorf("OutcomeFail.String() = %q, want %q", got, "|0>")
	}
	if got := OutcomePass.String(); got != "|1>" {
		t.Errorf("OutcomePass.String() = %q, want %q", got, "|1>")
	}
}
