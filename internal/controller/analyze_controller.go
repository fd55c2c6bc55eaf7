// Package controller exposes the simulation engine over HTTP.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"qdrift-go/internal/model"
	"qdrift-go/internal/report"
	"qdrift-go/internal/sim"
	"qdrift-go/internal/version"
)

// AnalyzeRequest is the body of POST /api/v1/analyze. Absent fields fall
// back to the analyzer defaults.
type AnalyzeRequest struct {
	Simulations int     `json:"simulations"`
	Noise       float64 `json:"noise"`
	Seed        *int64  `json:"seed"`
}

// AnalyzeResponse wraps a report with its server-side run metadata.
type AnalyzeResponse struct {
	RunID     string         `json:"run_id"`
	ElapsedMS int64          `json:"elapsed_ms"`
	Report    *report.Report `json:"report"`
}

// AnalyzeController serves simulation runs.
type AnalyzeController struct {
	runner *sim.Runner
	logger *zap.Logger
}

// NewAnalyzeController creates a new analyze controller.
func NewAnalyzeController(runner *sim.Runner, logger *zap.Logger) *AnalyzeController {
	return &AnalyzeController{runner: runner, logger: logger}
}

// Analyze runs one simulation and returns the wrapped report. Validation
// failures map to 400; they carry the same messages as the CLI.
func (a *AnalyzeController) Analyze(ctx *gin.Context) {
	req := AnalyzeRequest{
		Simulations: model.DefaultSimulations,
		Noise:       model.DefaultNoise,
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runID := uuid.NewString()
	start := time.Now()

	rep, err := a.runner.Run(model.RunConfig{
		Simulations: req.Simulations,
		Noise:       req.Noise,
		Seed:        req.Seed,
	})
	if err != nil {
		if errors.Is(err, model.ErrSimulations) || errors.Is(err, model.ErrNoise) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		a.logger.Error("Run failed",
			zap.String("run_id", runID),
			zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	a.logger.Info("Analyze request served",
		zap.String("run_id", runID),
		zap.Int("simulations", rep.Simulations),
		zap.Float64("noise", rep.NoiseLevel),
		zap.String("tier", string(rep.Verdict.Tier)))

	ctx.JSON(http.StatusOK, AnalyzeResponse{
		RunID:     runID,
		ElapsedMS: time.Since(start).Milliseconds(),
		Report:    rep,
	})
}

// Version reports the analyzer version.
func (a *AnalyzeController) Version(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"version": version.Version})
}
