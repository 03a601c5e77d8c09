package domain

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/strcase"
)

// Constraint kinds the engine recognizes. Unrecognized kinds are accepted
// and preserved but contribute no posted constraint.
const (
	KindMaxHours         = "max_hours"
	KindMinRest          = "min_rest"
	KindFairDistribution = "fair_distribution"
	KindSkillRequirement = "skill_requirement"
)

// Rules is the tagged-variant payload of a Constraint; only one concrete
// type is ever non-nil on a given Constraint, selected by Type.
type Rules interface {
	isConstraintRules()
}

// MaxHoursRules bounds the total scheduled time of an employee.
type MaxHoursRules struct {
	MaxHours     float64 `json:"maxHours"`
	PeriodInDays int     `json:"periodInDays"`
}

func (MaxHoursRules) isConstraintRules() {}

// MinRestRules bounds the minimum gap between two shifts of one employee.
type MinRestRules struct {
	MinRestHours float64 `json:"minRestHours"`
}

func (MinRestRules) isConstraintRules() {}

// FairDistributionRules carries no parameters; its presence alone
// triggers the fairness-cap policy.
type FairDistributionRules struct{}

func (FairDistributionRules) isConstraintRules() {}

// OpaqueRules preserves the rules bag of a constraint type this engine
// does not specially compile (skill_requirement, or anything unknown).
type OpaqueRules struct {
	Raw json.RawMessage `json:"-"`
}

func (OpaqueRules) isConstraintRules() {}

// Constraint is a declarative scheduling rule. Only active constraints are
// compiled into the CP model.
type Constraint struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Priority int    `json:"priority"`
	Active   bool   `json:"active"`
	Rules    Rules  `json:"-"`
}

// UnmarshalJSON reads the free-form `rules` bag and resolves it into the
// typed variant selected by `type`, so downstream code never sees a map.
func (c *Constraint) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID       string          `json:"id"`
		Type     string          `json:"type"`
		Rules    json.RawMessage `json:"rules"`
		Priority int             `json:"priority"`
		Active   *bool           `json:"active"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	c.ID = wire.ID
	c.Type = wire.Type
	c.Priority = wire.Priority
	if wire.Active == nil {
		c.Active = true
	} else {
		c.Active = *wire.Active
	}

	kind := strcase.ToSnake(c.Type)
	switch kind {
	case KindMaxHours:
		rules := MaxHoursRules{PeriodInDays: 7}
		if len(wire.Rules) > 0 {
			if err := json.Unmarshal(wire.Rules, &rules); err != nil {
				return fmt.Errorf("constraint %s: rules: %w", c.ID, err)
			}
		}
		if rules.PeriodInDays <= 0 {
			rules.PeriodInDays = 7
		}
		c.Rules = rules
	case KindMinRest:
		rules := MinRestRules{MinRestHours: 8.0}
		if len(wire.Rules) > 0 {
			if err := json.Unmarshal(wire.Rules, &rules); err != nil {
				return fmt.Errorf("constraint %s: rules: %w", c.ID, err)
			}
		}
		if rules.MinRestHours <= 0 {
			rules.MinRestHours = 8.0
		}
		c.Rules = rules
	case KindFairDistribution:
		c.Rules = FairDistributionRules{}
	default:
		c.Rules = OpaqueRules{Raw: wire.Rules}
	}

	return nil
}

// MaxHours returns the constraint's rules as MaxHoursRules, and whether
// Type is max_hours.
func (c Constraint) MaxHours() (MaxHoursRules, bool) {
	r, ok := c.Rules.(MaxHoursRules)
	return r, ok
}

// MinRest returns the constraint's rules as MinRestRules, and whether Type
// is min_rest.
func (c Constraint) MinRest() (MinRestRules, bool) {
	r, ok := c.Rules.(MinRestRules)
	return r, ok
}

// IsFairDistribution reports whether this constraint triggers the
// fairness-cap policy.
func (c Constraint) IsFairDistribution() bool {
	_, ok := c.Rules.(FairDistributionRules)
	return ok
}
