package solver

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/Kamul-droid/Scheduler/internal/domain"
	"github.com/Kamul-droid/Scheduler/internal/engine"
	"github.com/Kamul-droid/Scheduler/internal/filter"
)

// ScheduleSolver orchestrates filter -> build -> solve -> project. It
// holds no request state between calls beyond its configured default solve
// budget, and is safe to share across concurrent requests.
type ScheduleSolver struct {
	defaultMaxOptimizationTime int
}

// New returns a ready-to-use ScheduleSolver. defaultMaxOptimizationTime is
// the solve budget applied to requests that omit the `options` object
// entirely (domain.DefaultMaxOptimizationTimeSeconds for callers with no
// configured override, cfg.DefaultMaxOptimizationTime for the HTTP daemon).
func New(defaultMaxOptimizationTime int) ScheduleSolver {
	return ScheduleSolver{defaultMaxOptimizationTime: defaultMaxOptimizationTime}
}

// Solve runs one optimization request end to end.
func (s ScheduleSolver) Solve(ctx context.Context, req domain.OptimizationRequest) (Result, error) {
	start, end, err := req.Window()
	if err != nil {
		return Result{}, fmt.Errorf("parsing optimization window: %w", err)
	}

	filtered := filter.ShiftsInWindow(req.Shifts, start, end)
	if len(filtered) == 0 {
		glog.Warningf("no shifts overlap window [%s, %s)", req.StartDate, req.EndDate)
		return Result{
			Status:         StatusFailed,
			Solutions:      []engine.Solution{},
			TotalSolveTime: 0,
			Message:        msgNoShiftsInRange,
		}, nil
	}

	options := req.ResolvedOptions(s.defaultMaxOptimizationTime)
	active := req.ActiveConstraints()

	model, err := engine.Build(req.Employees, filtered, active, options.Objective)
	if err != nil {
		return Result{}, fmt.Errorf("building model: %w", err)
	}

	solutions, status, err := model.SolveForSolutions(ctx, options.MaxOptimizationTime, options.SolutionCount)
	if err != nil {
		return Result{}, fmt.Errorf("solving model: %w", err)
	}

	if len(solutions) == 0 && isSolvedStatus(status) {
		glog.Infof("solver reported %v but collected no solutions, synthesizing fallback", status)
		solutions = []engine.Solution{synthesizeFallback(req, filtered)}
	}

	if len(solutions) == 0 {
		return Result{
			Status:         StatusFailed,
			Solutions:      []engine.Solution{},
			TotalSolveTime: 0,
			Message:        msgNoFeasible,
		}, nil
	}

	var totalSolveTime float64
	for _, s := range solutions {
		totalSolveTime += s.SolveTimeMS
	}

	return Result{
		Status:         StatusCompleted,
		Solutions:      solutions,
		TotalSolveTime: totalSolveTime,
		Message:        fmt.Sprintf("Generated %d solution(s)", len(solutions)),
	}, nil
}
