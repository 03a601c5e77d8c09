package api

import "github.com/Kamul-droid/Scheduler/internal/engine"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// OptimizeResponse is the body of POST /optimize.
type OptimizeResponse struct {
	OptimizationID string            `json:"optimizationId"`
	Status         string            `json:"status"`
	Solutions      []engine.Solution `json:"solutions"`
	TotalSolveTime float64           `json:"totalSolveTime"`
	Message        string            `json:"message"`
}

const serviceName = "optimization-service"
const serviceVersion = "1.0.0"
const serviceTitle = "Resource Scheduler Optimization Service"
