// Package domain holds the value types the optimization engine operates
// on: employees, shifts, constraints, existing assignments, and the
// request/options envelope that ties them together.
package domain

import "encoding/json"

// Skill is a named capability an employee may hold, with an optional
// proficiency level.
type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Employee is a worker eligible for shift assignment.
type Employee struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Email               string         `json:"email"`
	Skills              []Skill        `json:"skills,omitempty"`
	AvailabilityPattern map[string]any `json:"availability_pattern,omitempty"`
	Metadata            map[string]any `json:"metadata,omitempty"`

	skillNames map[string]struct{}
}

// UnmarshalJSON normalizes the skill set into a lookup set at construction
// time, so HasSkill never has to re-derive it.
func (e *Employee) UnmarshalJSON(data []byte) error {
	type alias Employee
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = Employee(a)
	e.buildSkillNames()
	return nil
}

func (e *Employee) buildSkillNames() {
	e.skillNames = make(map[string]struct{}, len(e.Skills))
	for _, s := range e.Skills {
		e.skillNames[s.Name] = struct{}{}
	}
}

// HasSkill reports whether the employee's skill set contains name.
func (e *Employee) HasSkill(name string) bool {
	if e.skillNames == nil {
		e.buildSkillNames()
	}
	_, ok := e.skillNames[name]
	return ok
}

// HasAllSkills reports whether the employee holds every skill in names.
func (e *Employee) HasAllSkills(names map[string]struct{}) bool {
	for name := range names {
		if !e.HasSkill(name) {
			return false
		}
	}
	return true
}
