package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Shift is a time-bounded work unit requiring a staff count and optional
// skills.
type Shift struct {
	ID             string         `json:"id"`
	DepartmentID   string         `json:"department_id"`
	MinStaffing    int            `json:"min_staffing"`
	MaxStaffing    int            `json:"max_staffing"`
	StartTime      string         `json:"start_time"`
	EndTime        string         `json:"end_time"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	RequiredSkillsRaw json.RawMessage `json:"required_skills,omitempty"`

	requiredSkills map[string]struct{}
	start, end     time.Time
}

// UnmarshalJSON parses the three accepted shapes of required_skills
// (array of strings, array of {name}, or map[name]bool) into a single
// name set, and validates the staffing/time invariants up front.
func (s *Shift) UnmarshalJSON(data []byte) error {
	type alias Shift
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Shift(a)

	names, err := normalizeRequiredSkills(s.RequiredSkillsRaw)
	if err != nil {
		return fmt.Errorf("shift %s: required_skills: %w", s.ID, err)
	}
	s.requiredSkills = names

	if s.MaxStaffing < 1 {
		return fmt.Errorf("shift %s: max_staffing must be >= 1, got %d", s.ID, s.MaxStaffing)
	}
	if s.MinStaffing < 0 {
		return fmt.Errorf("shift %s: min_staffing must be >= 0, got %d", s.ID, s.MinStaffing)
	}
	if s.MaxStaffing < s.MinStaffing {
		return fmt.Errorf("shift %s: max_staffing (%d) must be >= min_staffing (%d)", s.ID, s.MaxStaffing, s.MinStaffing)
	}

	start, err := time.Parse(time.RFC3339, s.StartTime)
	if err != nil {
		return fmt.Errorf("shift %s: start_time: %w", s.ID, err)
	}
	end, err := time.Parse(time.RFC3339, s.EndTime)
	if err != nil {
		return fmt.Errorf("shift %s: end_time: %w", s.ID, err)
	}
	if !start.Before(end) {
		return fmt.Errorf("shift %s: start_time must be before end_time", s.ID)
	}
	s.start, s.end = start, end

	return nil
}

// normalizeRequiredSkills accepts the three wire shapes documented in the
// spec and collapses them into a single name set; the variant dies here.
func normalizeRequiredSkills(raw json.RawMessage) (map[string]struct{}, error) {
	names := make(map[string]struct{})
	if len(raw) == 0 || string(raw) == "null" {
		return names, nil
	}

	// (a) ["nursing", "cpr"]
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, n := range list {
			names[n] = struct{}{}
		}
		return names, nil
	}

	// (b) [{"name": "nursing"}, {"name": "cpr"}]
	var objs []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &objs); err == nil {
		for _, o := range objs {
			if o.Name != "" {
				names[o.Name] = struct{}{}
			}
		}
		return names, nil
	}

	// (c) {"nursing": true, "cpr": true}
	var m map[string]bool
	if err := json.Unmarshal(raw, &m); err == nil {
		for name, truthy := range m {
			if truthy {
				names[name] = struct{}{}
			}
		}
		return names, nil
	}

	return nil, fmt.Errorf("unsupported required_skills shape: %s", string(raw))
}

// RequiredSkills returns the normalized required-skill name set.
func (s *Shift) RequiredSkills() map[string]struct{} {
	return s.requiredSkills
}

// Start returns the parsed start instant.
func (s *Shift) Start() time.Time { return s.start }

// End returns the parsed end instant.
func (s *Shift) End() time.Time { return s.end }

// DurationHours is the shift length in hours.
func (s *Shift) DurationHours() float64 {
	return s.end.Sub(s.start).Hours()
}

// DurationMinutes rounds the shift's duration to the nearest integer
// minute, the unit the integer CP model operates in.
func (s *Shift) DurationMinutes() int64 {
	return int64(math.Round(s.DurationHours() * 60))
}
