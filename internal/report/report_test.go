package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qdrift-go/internal/fragility"
	"qdrift-go/internal/metrics"
	"qdrift-go/internal/model"
)

func sampleReport(seed *int64) *Report {
	cfg := model.RunConfig{Simulations: 1000, Noise: 0.3, Seed: seed}
	dist := metrics.Distribution{Fail: 372, Pass: 628}
	entropy := metrics.EntropyOf(dist)
	bias := metrics.BiasOf(dist)
	return New(cfg, dist, entropy, bias, fragility.Classify(entropy))
}

func TestWriteLoadRoundTrip(t *testing.T) {
	seed := int64(42)
	rep := sampleReport(&seed)
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, Write(path, rep))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, rep.Simulations, loaded.Simulations)
	assert.Equal(t, rep.NoiseLevel, loaded.NoiseLevel)
	require.NotNil(t, loaded.Seed)
	assert.Equal(t, seed, *loaded.Seed)
	assert.Equal(t, rep.Metrics, loaded.Metrics)
	assert.Equal(t, rep.Status, loaded.Status)
	assert.Equal(t, rep.Verdict, loaded.Verdict)
}

func TestWriteSnapshotShape(t *testing.T) {
	rep := sampleReport(nil)
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, Write(path, rep))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Contains(t, doc, "simulations")
	assert.Contains(t, doc, "noise_level")
	assert.Contains(t, doc, "seed")
	assert.Nil(t, doc["seed"])
	assert.Contains(t, doc, "status")

	m, ok := doc["metrics"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, m, "entropy")
	assert.Contains(t, m, "bias")

	d, ok := m["distribution"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, d, "0_fail")
	assert.Contains(t, d, "1_pass")
}

func TestLoadRejectsMalformedSnapshot(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
	}{
		{"missing status", `{"simulations": 10, "noise_level": 0.3, "seed": null, "metrics": {"entropy": 0.5, "bias": 0.1, "distribution": {"0_fail": 4, "1_pass": 6}}}`},
		{"zero simulations", `{"simulations": 0, "noise_level": 0.3, "seed": null, "metrics": {"entropy": 0.5, "bias": 0.1, "distribution": {"0_fail": 0, "1_pass": 0}}, "status": "STABLE: System appears robust."}`},
		{"bias out of range", `{"simulations": 10, "noise_level": 0.3, "seed": null, "metrics": {"entropy": 0.5, "bias": 0.7, "distribution": {"0_fail": 4, "1_pass": 6}}, "status": "STABLE: System appears robust."}`},
		{"unknown key", `{"simulations": 10, "noise_level": 0.3, "seed": null, "metrics": {"entropy": 0.5, "bias": 0.1, "distribution": {"0_fail": 4, "1_pass": 6}}, "status": "ok", "extra": true}`},
		{"not json", `not a report`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestWriteFailsOnBadPath(t *testing.T) {
	rep := sampleReport(nil)
	err := Write(filepath.Join(t.TempDir(), "missing", "report.json"), rep)
	assert.Error(t, err)
}
