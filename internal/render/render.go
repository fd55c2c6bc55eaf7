// Package render draws the terminal presentation of a report: the collapse
// distribution panel, the metrics table, and the colored status line.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"qdrift-go/internal/fragility"
	"qdrift-go/internal/report"
)

const barWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	noteStyle = lipgloss.NewStyle().Faint(true)

	tierStyles = map[fragility.Tier]lipgloss.Style{
		fragility.TierStable:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		fragility.TierWarning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		fragility.TierCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
)

// DistributionPanel renders the qubit collapse distribution as a bordered
// bar chart. It returns an empty string when there is nothing to draw.
func DistributionPanel(fail, pass int) string {
	total := fail + pass
	if total == 0 {
		return ""
	}

	ratio0 := float64(fail) / float64(total)
	ratio1 := float64(pass) / float64(total)
	body := fmt.Sprintf("%s  %s %d (%.1f%%)\n%s  %s %d (%.1f%%)",
		failStyle.Render("State |0> (Fail)"), bar(ratio0), fail, ratio0*100,
		passStyle.Render("State |1> (Pass)"), bar(ratio1), pass, ratio1*100)

	return panelStyle.Render(titleStyle.Render("Qubit Collapse Distribution") + "\n" + body)
}

func bar(ratio float64) string {
	return strings.Repeat("█", int(ratio*barWidth))
}

// MetricsTable renders the run summary table.
func MetricsTable(rep *report.Report) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Metric", "Value").
		Row("Simulations", fmt.Sprintf("%d", rep.Simulations)).
		Row("Noise Level", fmt.Sprintf("%.2f%%", rep.NoiseLevel*100)).
		Row("Collapse Bias", fmt.Sprintf("%.6f", rep.Metrics.Bias)).
		Row("Drift Entropy Score", fmt.Sprintf("%.6f", rep.Metrics.Entropy))

	return titleStyle.Render("Q-Drift Analysis Report") + "\n" + t.Render()
}

// StatusLine renders the classification verdict in its tier color.
func StatusLine(v fragility.Verdict) string {
	style, ok := tierStyles[v.Tier]
	if !ok {
		return v.String()
	}
	return style.Render(v.String())
}

// Note renders dim auxiliary output, such as the seed notice or the
// saved-report path.
func Note(s string) string {
	return noteStyle.Render(s)
}
