// Package engine builds and drives the CP-SAT model that assigns
// employees to shifts.
//
// Variable and constraint compilation follow the integer-CP idiom shown
// in the OR-Tools Go samples (nurse scheduling, interval ranking): a
// cpmodel.Builder accumulates boolean/integer variables and linear
// constraints, then is frozen into a CpModelProto and handed to the
// solver. See driver.go for a note on the solution-enumeration callback,
// which this package's own Solve loop synthesizes on top of the
// installed binding.
package engine

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/Kamul-droid/Scheduler/internal/domain"
)

// pairKey indexes the x[e,s] variable map.
type pairKey struct {
	employee int
	shift    int
}

// Model is the compiled CP-SAT model for one optimization request: the
// decision variables, the builder they live in, and the index maps back
// to domain ids.
type Model struct {
	builder *cpmodel.Builder

	employees []domain.Employee
	shifts    []domain.Shift

	employeeIndex map[string]int
	shiftIndex    map[string]int

	x map[pairKey]cpmodel.BoolVar

	objective string
}

// Build compiles employees, shifts (already window-filtered), active
// constraints, and the chosen objective into a Model ready to solve.
// Construction never fails on an empty employee or shift set — the model
// is simply trivial and the solver still runs.
func Build(
	employees []domain.Employee,
	shifts []domain.Shift,
	constraints []domain.Constraint,
	objective string,
) (*Model, error) {
	m := &Model{
		builder:       cpmodel.NewCpModelBuilder(),
		employees:     employees,
		shifts:        shifts,
		employeeIndex: make(map[string]int, len(employees)),
		shiftIndex:    make(map[string]int, len(shifts)),
		x:             make(map[pairKey]cpmodel.BoolVar, len(employees)*len(shifts)),
		objective:     objective,
	}

	for i, e := range employees {
		m.employeeIndex[e.ID] = i
	}
	for i, s := range shifts {
		m.shiftIndex[s.ID] = i
	}

	m.createVariables()

	if err := m.postStaffingConstraints(); err != nil {
		return nil, fmt.Errorf("staffing constraints: %w", err)
	}
	m.postSkillConstraints()
	m.postMaxHoursConstraints(constraints)
	m.postMinRestConstraints(constraints)
	m.postFairDistributionConstraints(constraints)
	m.postObjective()

	return m, nil
}

func (m *Model) createVariables() {
	for e := range m.employees {
		for s := range m.shifts {
			name := fmt.Sprintf("x_e%d_s%d", e, s)
			m.x[pairKey{e, s}] = m.builder.NewBoolVar().WithName(name)
		}
	}
}

// Employees returns the employees in the model, in their variable-row
// order.
func (m *Model) Employees() []domain.Employee { return m.employees }

// Shifts returns the shifts in the model, in their variable-column order.
func (m *Model) Shifts() []domain.Shift { return m.shifts }

// Var returns the decision variable for (employee index, shift index).
func (m *Model) Var(employee, shift int) cpmodel.BoolVar {
	return m.x[pairKey{employee, shift}]
}
