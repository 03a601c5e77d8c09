package engine

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/sat_parameters"
	"google.golang.org/protobuf/proto"

	"github.com/Kamul-droid/Scheduler/internal/metrics"
)

// Solution is one feasible assignment list together with its score,
// metrics, and wall-clock.
type Solution struct {
	ID          string               `json:"id"`
	Score       float64              `json:"score"`
	Assignments []metrics.Assignment `json:"assignments"`
	Metrics     metrics.Metrics      `json:"metrics"`
	SolveTimeMS float64              `json:"solveTime"`
}

// NOTE on the solution-enumeration callback:
//
// The retrieved OR-Tools Go samples (nurse scheduling, interval ranking,
// no-overlap) only exercise the single-shot cpmodel.SolveCpModel, which
// returns the final response once the search completes or the time limit
// is hit — there is no native per-solution callback surface in the
// snapshot this module was grounded on. The Python and C++ CP-SAT APIs
// do expose one (CpSolverSolutionCallback / StopSearch), and the design
// note in this service's spec calls for modeling the driver as "a small
// interface the solver invokes with the current assignment". We approximate
// it by driving the solver ourselves: each round solves the remaining
// feasible region to optimality, the collector is invoked with the round's
// response, and (unless the collector says to stop) a no-good cut forbidding
// an exact repeat of that round's assignment is added before the next round.
//
// This is NOT identical to a native improving callback: because each round
// re-solves to optimality over a shrinking feasible region, round 1 yields
// the best score and every later round's score is >= the one before it
// (excluding one point from a feasible region can only hold the optimum
// steady or make it worse). A native callback instead reports improving
// solutions as the search progresses, so the *last* one reported is the
// best. To present the same improving order the collector's own callers
// expect (see solve.go/collector.go), solutionCollector.results() reverses
// the round order before returning, so the caller's last solution is
// round 1's (the true optimum) and its first is the most degraded round.
type solutionCallback interface {
	// onSolution is invoked once per round with the round's solver
	// response and wall-clock duration. It returns false to stop the
	// search (e.g. because the collector already has enough solutions).
	onSolution(response *cmpb.CpSolverResponse, wall time.Duration) (keepGoing bool)
}

// Solve drives the CP-SAT solver within the given wall-clock budget,
// feeding every round's response to cb, until cb asks to stop, the
// budget is exhausted, ctx is canceled, or the solver reports a
// terminal non-solution status.
func (m *Model) Solve(ctx context.Context, maxSeconds int, cb solutionCallback) (cmpb.CpSolverStatus, error) {
	budget := time.Duration(maxSeconds) * time.Second
	deadline := time.Now().Add(budget)

	lastStatus := cmpb.CpSolverStatus_UNKNOWN

	for {
		if ctx.Err() != nil {
			return lastStatus, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return lastStatus, nil
		}

		modelProto, err := m.builder.Model()
		if err != nil {
			return lastStatus, err
		}

		params := &sppb.SatParameters{
			MaxTimeInSeconds: proto.Float64(remaining.Seconds()),
		}

		start := time.Now()
		response, err := cpmodel.SolveCpModelWithParameters(modelProto, params)
		wall := time.Since(start)
		if err != nil {
			return lastStatus, err
		}

		lastStatus = response.GetStatus()

		if lastStatus != cmpb.CpSolverStatus_OPTIMAL && lastStatus != cmpb.CpSolverStatus_FEASIBLE {
			return lastStatus, nil
		}

		keepGoing := cb.onSolution(response, wall)
		if !keepGoing {
			return lastStatus, nil
		}

		m.forbidExactRepeat(response)
	}
}

// forbidExactRepeat posts a no-good cut so the next round cannot return
// the identical assignment: the Hamming distance between the next
// solution's x values and this round's must be at least 1.
func (m *Model) forbidExactRepeat(response *cmpb.CpSolverResponse) {
	var ones int64
	for _, v := range m.x {
		if cpmodel.SolutionBooleanValue(response, v) {
			ones++
		}
	}

	// diff == (number of variables whose next value differs from this
	// round's). Starts at `ones`, then each variable that was 1 this
	// round subtracts itself (back to 0 if unchanged) and each variable
	// that was 0 adds itself (up from 0 if unchanged).
	diff := cpmodel.NewConstant(ones)
	for _, v := range m.x {
		if cpmodel.SolutionBooleanValue(response, v) {
			diff.AddTerm(v, -1)
		} else {
			diff.AddTerm(v, 1)
		}
	}

	glog.V(2).Infof("posting diversity cut over %d variables", len(m.x))
	m.builder.AddLessOrEqual(cpmodel.NewConstant(1), diff)
}
