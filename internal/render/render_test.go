package render

import (
	"strings"
	"testing"

	"qdrift-go/internal/fragility"
	"qdrift-go/internal/metrics"
	"qdrift-go/internal/model"
	"qdrift-go/internal/report"
)

func TestDistributionPanel(t *testing.T) {
	out := DistributionPanel(250, 750)
	for _, want := range []string{"250", "750", "25.0%", "75.0%", "State |0> (Fail)", "State |1> (Pass)"} {
		if !strings.Contains(out, want) {
			t.Errorf("DistributionPanel() missing %q", want)
		}
	}
}

func TestDistributionPanelEmpty(t *testing.T) {
	if out := DistributionPanel(0, 0); out != "" {
		t.Errorf("DistributionPanel(0, 0) = %q, want empty", out)
	}
}

func TestMetricsTable(t *testing.T) {
	cfg := model.RunConfig{Simulations: 1000, Noise: 0.3}
	dist := metrics.Distribution{Fail: 400, Pass: 600}
	rep := report.New(cfg, dist, 0.970951, 0.1, fragility.Classify(0.970951))

	out := MetricsTable(rep)
	for _, want := range []string{"Simulations", "1000", "Noise Level", "30.00%", "Collapse Bias", "Drift Entropy Score"} {
		if !strings.Contains(out, want) {
			t.Errorf("MetricsTable() missing %q", want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	for _, entropy := range []float64{0.1, 0.5, 0.9} {
		v := fragility.Classify(entropy)
		if out := StatusLine(v); !strings.Contains(out, v.String()) {
			t.Errorf("StatusLine(%v) = %q, missing %q", v.Tier, out, v.String())
		}
	}
}
