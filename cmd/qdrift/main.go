// Command qdrift analyzes structural fragility under probabilistic drift:
// it models a binary drift process as a noisy coin-flip simulation,
// summarizes the outcome distribution with entropy and collapse bias, and
// classifies the result.
package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"qdrift-go/internal/version"
)

func main() {
	args := os.Args[1:]

	cmd := "analyze"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "analyze":
		os.Exit(runAnalyze(args))
	case "serve":
		os.Exit(runServe(args))
	case "show":
		os.Exit(runShow(args))
	case "version":
		fmt.Printf("q-drift v%s\n", version.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (expected analyze, serve, show or version)\n", cmd)
		os.Exit(2)
	}
}

// newLogger builds the zap logger for a command. CLI runs stay quiet at
// warn level unless -verbose is set; serve mode passes info.
func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level.SetLevel(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
