// Package solver hosts the schedule-solver facade: it orchestrates the
// shift window filter, the CP-SAT engine, and solution metrics into the
// top-level optimize result.
package solver

import "github.com/Kamul-droid/Scheduler/internal/engine"

// Status values for Result.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

const (
	msgNoShiftsInRange  = "No shifts found in the specified date range"
	msgNoFeasible       = "No feasible solution found"
	fallbackSolutionID  = "current"
	fallbackFairness    = 0.5
)

// Result is the facade's top-level response, independent of transport.
type Result struct {
	Status         string            `json:"status"`
	Solutions      []engine.Solution `json:"solutions"`
	TotalSolveTime float64           `json:"totalSolveTime"`
	Message        string            `json:"message"`
}
