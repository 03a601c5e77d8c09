package engine

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/Kamul-droid/Scheduler/internal/domain"
)

// postStaffingConstraints posts minStaffing(s) <= sum_e x[e,s] <= maxStaffing(s)
// for every shift in the model.
func (m *Model) postStaffingConstraints() error {
	for s, shift := range m.shifts {
		total := cpmodel.NewLinearExpr()
		for e := range m.employees {
			total.Add(m.Var(e, s))
		}
		m.builder.AddLessOrEqual(cpmodel.NewConstant(int64(shift.MinStaffing)), total)
		m.builder.AddLessOrEqual(total, cpmodel.NewConstant(int64(shift.MaxStaffing)))
	}
	return nil
}

// postSkillConstraints forbids x[e,s] whenever employee e lacks one of
// shift s's required skills (AND semantics across required skills).
func (m *Model) postSkillConstraints() {
	for s, shift := range m.shifts {
		required := shift.RequiredSkills()
		if len(required) == 0 {
			continue
		}
		for e, employee := range m.employees {
			if !employee.HasAllSkills(required) {
				m.builder.AddEquality(m.Var(e, s), cpmodel.NewConstant(0))
			}
		}
	}
}

// postMaxHoursConstraints posts, for every active max_hours constraint and
// every employee, sum_s minutes(s)*x[e,s] <= floor(maxHours*60). The
// period field is stored on the constraint but not used to window the
// sum in this revision.
func (m *Model) postMaxHoursConstraints(constraints []domain.Constraint) {
	for _, c := range constraints {
		rules, ok := c.MaxHours()
		if !ok || rules.MaxHours <= 0 {
			continue
		}
		maxMinutes := int64(rules.MaxHours * 60)

		for e := range m.employees {
			expr := cpmodel.NewLinearExpr()
			any := false
			for s, shift := range m.shifts {
				minutes := shift.DurationMinutes()
				if minutes == 0 {
					continue
				}
				expr.AddTerm(m.Var(e, s), minutes)
				any = true
			}
			if any {
				m.builder.AddLessOrEqual(expr, cpmodel.NewConstant(maxMinutes))
			}
		}
	}
}

// postMinRestConstraints uses the first active min_rest constraint (8h if
// none declares a value) and forbids assigning the same employee to two
// shifts whose gap is strictly positive but shorter than the minimum. A
// non-positive gap (overlapping or reversed shifts) is not constrained
// here.
func (m *Model) postMinRestConstraints(constraints []domain.Constraint) {
	minRestHours, ok := firstMinRestHours(constraints)
	if !ok {
		return
	}

	for s1, shift1 := range m.shifts {
		for s2, shift2 := range m.shifts {
			if s1 == s2 {
				continue
			}
			gapHours := shift2.Start().Sub(shift1.End()).Hours()
			if gapHours <= 0 || gapHours >= minRestHours {
				continue
			}
			for e := range m.employees {
				pair := cpmodel.NewLinearExpr()
				pair.Add(m.Var(e, s1))
				pair.Add(m.Var(e, s2))
				m.builder.AddLessOrEqual(pair, cpmodel.NewConstant(1))
			}
		}
	}
}

func firstMinRestHours(constraints []domain.Constraint) (float64, bool) {
	for _, c := range constraints {
		if rules, ok := c.MinRest(); ok {
			return rules.MinRestHours, true
		}
	}
	return 0, false
}

// postFairDistributionConstraints, when at least one fair_distribution
// constraint is active, caps every employee at floor(|S|/|E|)+1
// assignments.
func (m *Model) postFairDistributionConstraints(constraints []domain.Constraint) {
	if !anyFairDistribution(constraints) {
		return
	}
	if len(m.employees) == 0 {
		return
	}

	capPerEmployee := len(m.shifts)/len(m.employees) + 1
	for e := range m.employees {
		total := cpmodel.NewLinearExpr()
		for s := range m.shifts {
			total.Add(m.Var(e, s))
		}
		m.builder.AddLessOrEqual(total, cpmodel.NewConstant(int64(capPerEmployee)))
	}
}

func anyFairDistribution(constraints []domain.Constraint) bool {
	for _, c := range constraints {
		if c.IsFairDistribution() {
			return true
		}
	}
	return false
}
