package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"

	"qdrift-go/internal/config"
	"qdrift-go/internal/model"
	"qdrift-go/internal/render"
	"qdrift-go/internal/report"
	"qdrift-go/internal/sim"
)

// runAnalyze runs one simulation from flags and renders or exports the
// report. Flag values override the YAML config, which overrides the
// built-in defaults.
func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	simulations := fs.Int("simulations", model.DefaultSimulations, "Number of simulated executions")
	noise := fs.Float64("noise", model.DefaultNoise, "Instability level (0.0 - 1.0)")
	seed := fs.Int64("seed", 0, "Deterministic seed for reproducibility")
	output := fs.String("output", "", "Path to export results as JSON")
	graph := fs.Bool("graph", true, "Show ASCII distribution graph")
	ciMode := fs.Bool("ci", false, "Disable visual output for CI environments")
	configPath := fs.String("config", "", "Path to YAML configuration file")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := zapcore.WarnLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	runCfg := model.RunConfig{
		Simulations: cfg.Simulation.Simulations,
		Noise:       cfg.Simulation.Noise,
	}
	seedSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "simulations":
			runCfg.Simulations = *simulations
		case "noise":
			runCfg.Noise = *noise
		case "seed":
			seedSet = true
		}
	})
	if seedSet {
		s := *seed
		runCfg.Seed = &s
		if !*ciMode {
			fmt.Println(render.Note(fmt.Sprintf("Deterministic mode enabled. Seed: %d", s)))
		}
	}

	rep, err := sim.NewRunner(logger).Run(runCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if !*ciMode {
		if *graph {
			fmt.Println()
			fmt.Println(render.DistributionPanel(rep.Metrics.Distribution.Fail, rep.Metrics.Distribution.Pass))
			fmt.Println()
		}
		fmt.Println(render.MetricsTable(rep))
		fmt.Println(render.StatusLine(rep.Verdict))
	}

	if *output != "" {
		if err := report.Write(*output, rep); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if !*ciMode {
			fmt.Println(render.Note("Report saved to: " + *output))
		}
	}

	return rep.Verdict.ExitCode()
}
