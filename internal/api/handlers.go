// Package api wires the optimization service's HTTP surface on top of
// huma: schema-validated request/response models, a correlation-id and
// CORS middleware pair, and the three routes the service exposes.
package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma"
	"github.com/danielgtaylor/huma/responses"
	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/Kamul-droid/Scheduler/internal/domain"
	"github.com/Kamul-droid/Scheduler/internal/solver"
)

// Register attaches health, root, and optimize routes to app.
func Register(app *huma.Router, solve solver.ScheduleSolver) {
	registerHealth(app)
	registerRoot(app)
	registerOptimize(app, solve)
}

func registerHealth(app *huma.Router) {
	app.Resource("/health").Get("get-health", "Liveness probe.",
		responses.OK().Model(HealthResponse{}),
	).Run(func(ctx huma.Context) {
		ctx.WriteModel(http.StatusOK, HealthResponse{
			Status:  "healthy",
			Service: serviceName,
			Version: serviceVersion,
		})
	})
}

func registerRoot(app *huma.Router) {
	app.Resource("/").Get("get-root", "Service descriptor.",
		responses.OK().Model(RootResponse{}),
	).Run(func(ctx huma.Context) {
		ctx.WriteModel(http.StatusOK, RootResponse{
			Service: serviceTitle,
			Version: serviceVersion,
			Endpoints: map[string]string{
				"health":   "/health",
				"optimize": "/optimize",
			},
		})
	})
}

func registerOptimize(app *huma.Router, solve solver.ScheduleSolver) {
	app.Resource("/optimize").Post("post-optimize", "Run one scheduling optimization.",
		responses.OK().Model(OptimizeResponse{}),
		responses.UnprocessableEntity(),
		responses.InternalServerError(),
	).Run(func(ctx huma.Context, input struct {
		Body io.Reader
	}) {
		corrID := correlationID(ctx.Context())

		raw, err := io.ReadAll(input.Body)
		if err != nil {
			ctx.WriteError(http.StatusBadRequest, "could not read request body", err)
			return
		}

		if err := validateEnvelope(raw); err != nil {
			ctx.WriteError(http.StatusUnprocessableEntity, err.Error())
			return
		}

		req, err := domain.ParseOptimizationRequest(raw)
		if err != nil {
			ctx.WriteError(http.StatusUnprocessableEntity, fmt.Sprintf("request validation failed: %v", err))
			return
		}

		glog.Infof("correlation_id=%s optimize: %d employees, %d shifts", corrID, len(req.Employees), len(req.Shifts))

		result, err := solve.Solve(ctx.Context(), req)
		if err != nil {
			glog.Errorf("correlation_id=%s optimize failed: %v", corrID, err)
			ctx.WriteError(http.StatusInternalServerError, "optimization failed", err)
			return
		}

		ctx.WriteModel(http.StatusOK, OptimizeResponse{
			OptimizationID: newOptimizationID(),
			Status:         result.Status,
			Solutions:      result.Solutions,
			TotalSolveTime: result.TotalSolveTime,
			Message:        result.Message,
		})
	})
}

// newOptimizationID mints an "opt_" prefixed 8-hex-char identifier from a
// fresh random UUID.
func newOptimizationID() string {
	id := uuid.New()
	return "opt_" + id.String()[:8]
}
