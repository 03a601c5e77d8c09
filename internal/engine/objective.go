package engine

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/Kamul-droid/Scheduler/internal/domain"
)

// maxHoursVarBound is the upper bound, in minutes, on any employee's
// per-employee total-hours variable used by the fairness objective —
// generous enough to never bind on realistic inputs.
const maxHoursVarBound = 10000

// postObjective posts the objective selected by the request's options.
// balance is, in this revision, identical to minimize_cost.
func (m *Model) postObjective() {
	switch m.objective {
	case domain.ObjectiveMaximizeFairness:
		m.postFairnessObjective()
	default:
		m.postCostObjective()
	}
}

func (m *Model) postCostObjective() {
	cost := cpmodel.NewLinearExpr()
	for e := range m.employees {
		for s, shift := range m.shifts {
			cost.AddTerm(m.Var(e, s), shift.DurationMinutes())
		}
	}
	m.builder.Minimize(cost)
}

func (m *Model) postFairnessObjective() {
	bound := cpmodel.NewDomain(0, maxHoursVarBound)

	hoursPerEmployee := make([]cpmodel.IntVar, len(m.employees))
	for e := range m.employees {
		hoursVar := m.builder.NewIntVarFromDomain(bound)

		total := cpmodel.NewLinearExpr()
		for s, shift := range m.shifts {
			total.AddTerm(m.Var(e, s), shift.DurationMinutes())
		}
		m.builder.AddEquality(hoursVar, total)
		hoursPerEmployee[e] = hoursVar
	}

	hmax := m.builder.NewIntVarFromDomain(bound)
	hmin := m.builder.NewIntVarFromDomain(bound)
	for _, hoursVar := range hoursPerEmployee {
		m.builder.AddLessOrEqual(hoursVar, hmax)
		m.builder.AddLessOrEqual(hmin, hoursVar)
	}

	spread := cpmodel.NewLinearExpr()
	spread.Add(hmax)
	spread.AddTerm(hmin, -1)
	m.builder.Minimize(spread)
}
