package solver

import (
	"github.com/golang/glog"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/Kamul-droid/Scheduler/internal/domain"
	"github.com/Kamul-droid/Scheduler/internal/engine"
	"github.com/Kamul-droid/Scheduler/internal/metrics"
)

func isSolvedStatus(status cmpb.CpSolverStatus) bool {
	return status == cmpb.CpSolverStatus_OPTIMAL || status == cmpb.CpSolverStatus_FEASIBLE
}

// synthesizeFallback builds a single "current" solution from confirmed
// existing assignments, used when the solver terminates OPTIMAL/FEASIBLE
// but the collector recorded nothing. Times are echoed from the existing
// schedule row, not the shift.
func synthesizeFallback(req domain.OptimizationRequest, shifts []domain.Shift) engine.Solution {
	assignments := make([]metrics.Assignment, 0)
	for _, a := range req.ConfirmedSchedules() {
		assignment, err := metrics.NewAssignmentFromTimes(a.EmployeeID, a.ShiftID, a.StartTime, a.EndTime)
		if err != nil {
			glog.Warningf("fallback: skipping schedule %s with unparseable times: %v", a.ID, err)
			continue
		}
		assignments = append(assignments, assignment)
	}

	// The fallback is not a solved assignment: coverage is a plain count
	// of the echoed rows over the shift set, cost is not computed at all
	// (0, not metrics.Compute's hours*rate), and fairness is the fixed
	// fallbackFairness value — matching
	// optimization_engine.py::_create_solution_from_current.
	coverage := 0.0
	if len(shifts) > 0 {
		coverage = float64(len(assignments)) / float64(len(shifts))
	}
	m := metrics.Metrics{
		TotalCost:            0,
		FairnessScore:         fallbackFairness,
		ConstraintViolations: 0,
		Coverage:             coverage,
	}

	return engine.Solution{
		ID:          fallbackSolutionID,
		Score:       0,
		Assignments: assignments,
		Metrics:     m,
		SolveTimeMS: 0,
	}
}
