package api

import (
	"github.com/danielgtaylor/huma"

	"github.com/Kamul-droid/Scheduler/internal/config"
	"github.com/Kamul-droid/Scheduler/internal/solver"
)

// NewApp builds the huma router for the optimization service: middleware
// first, then routes, mirroring the order the teacher's own CLI template
// wires option parsing before invocation. cfg.DefaultMaxOptimizationTime
// becomes the solve budget for requests that omit their `options` object.
func NewApp(cfg config.Config) *huma.Router {
	app := huma.New(serviceTitle, serviceVersion)
	app.Middleware(corsMiddleware, correlationIDMiddleware)
	Register(app, solver.New(cfg.DefaultMaxOptimizationTime))
	return app
}
