package main

import (
	"flag"
	"fmt"
	"os"

	"qdrift-go/internal/render"
	"qdrift-go/internal/report"
)

// runShow re-renders a previously exported snapshot. The exit code mirrors
// the stored verdict, so CI can gate on an archived report.
func runShow(args []string) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	graph := fs.Bool("graph", true, "Show ASCII distribution graph")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: qdrift show [flags] <report.json>")
		return 2
	}

	rep, err := report.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *graph {
		fmt.Println()
		fmt.Println(render.DistributionPanel(rep.Metrics.Distribution.Fail, rep.Metrics.Distribution.Pass))
		fmt.Println()
	}
	fmt.Println(render.MetricsTable(rep))
	fmt.Println(render.StatusLine(rep.Verdict))

	return rep.Verdict.ExitCode()
}
