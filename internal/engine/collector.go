package engine

import (
	"strconv"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/Kamul-droid/Scheduler/internal/metrics"
)

// solutionCollector accumulates up to maxSolutions materialized solutions
// as the driver reports rounds. It is safe for concurrent onSolution
// calls even though this module's own driver invokes it sequentially —
// the CP-SAT solver's own worker threads are not assumed to respect that
// in general, so the collector treats itself as the serialization point
// the spec's concurrency model requires.
type solutionCollector struct {
	model        *Model
	maxSolutions int
	totalShifts  int

	mu        sync.Mutex
	solutions []Solution
}

func newSolutionCollector(model *Model, maxSolutions int) *solutionCollector {
	return &solutionCollector{
		model:        model,
		maxSolutions: maxSolutions,
		totalShifts:  len(model.shifts),
	}
}

func (c *solutionCollector) onSolution(response *cmpb.CpSolverResponse, wall time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.solutions) >= c.maxSolutions {
		return false
	}

	assignments := make([]metrics.Assignment, 0)
	for e, employee := range c.model.employees {
		for s, shift := range c.model.shifts {
			if cpmodel.SolutionBooleanValue(response, c.model.Var(e, s)) {
				assignments = append(assignments, metrics.NewAssignment(employee.ID, shift))
			}
		}
	}

	sol := Solution{
		ID:          solutionID(len(c.solutions) + 1),
		Score:       response.GetObjectiveValue(),
		Assignments: assignments,
		Metrics:     metrics.Compute(assignments, c.totalShifts),
		SolveTimeMS: wall.Seconds() * 1000,
	}
	c.solutions = append(c.solutions, sol)
	glog.V(1).Infof("collected %s: %d assignments, score %.2f", sol.ID, len(assignments), sol.Score)

	return len(c.solutions) < c.maxSolutions
}

// results returns the collected solutions in improving order (last ==
// best), matching the ordering guarantee a native improving callback
// would produce. Each round here instead re-solves to optimality over a
// shrinking feasible region, so round 1 is already the best and later
// rounds only degrade — results reverses that solve order and renumbers
// ids to match the returned position.
func (c *solutionCollector) results() []Solution {
	c.mu.Lock()
	defer c.mu.Unlock()

	reversed := make([]Solution, len(c.solutions))
	for i, sol := range c.solutions {
		sol.ID = solutionID(len(c.solutions) - i)
		reversed[len(c.solutions)-1-i] = sol
	}
	return reversed
}

func solutionID(n int) string {
	return "solution_" + strconv.Itoa(n)
}
