package engine

import (
	"context"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
)

// SolveForSolutions runs the model's Solve loop behind a solutionCollector
// bounded to maxSolutions, and returns the materialized solutions plus
// the final solver status.
func (m *Model) SolveForSolutions(ctx context.Context, maxSeconds, maxSolutions int) ([]Solution, cmpb.CpSolverStatus, error) {
	collector := newSolutionCollector(m, maxSolutions)
	status, err := m.Solve(ctx, maxSeconds, collector)
	if err != nil {
		return nil, status, err
	}
	return collector.results(), status, nil
}
