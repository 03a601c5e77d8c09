// Package metrics computes solution-quality figures from a materialized
// assignment list.
package metrics

import (
	"time"

	"github.com/Kamul-droid/Scheduler/internal/domain"
)

// Assignment is one (employee, shift) pairing in a candidate solution.
type Assignment struct {
	EmployeeID string    `json:"employeeId"`
	ShiftID    string    `json:"shiftId"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	start, end time.Time
}

// NewAssignment builds an Assignment from a shift and the assigned
// employee id, echoing the shift's own times verbatim.
func NewAssignment(employeeID string, shift domain.Shift) Assignment {
	return Assignment{
		EmployeeID: employeeID,
		ShiftID:    shift.ID,
		StartTime:  shift.StartTime,
		EndTime:    shift.EndTime,
		start:      shift.Start(),
		end:        shift.End(),
	}
}

func (a Assignment) hours() float64 {
	return a.end.Sub(a.start).Hours()
}

// NewAssignmentFromTimes builds an Assignment from raw ISO-8601 time
// strings, for callers (fallback synthesis) projecting an existing
// schedule row rather than a shift in the model.
func NewAssignmentFromTimes(employeeID, shiftID, startTime, endTime string) (Assignment, error) {
	start, err := time.Parse(time.RFC3339, startTime)
	if err != nil {
		return Assignment{}, err
	}
	end, err := time.Parse(time.RFC3339, endTime)
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{
		EmployeeID: employeeID,
		ShiftID:    shiftID,
		StartTime:  startTime,
		EndTime:    endTime,
		start:      start,
		end:        end,
	}, nil
}

// Metrics is the quality summary attached to every returned solution.
type Metrics struct {
	TotalCost            float64 `json:"totalCost"`
	FairnessScore         float64 `json:"fairnessScore"`
	ConstraintViolations int     `json:"constraintViolations"`
	Coverage             float64 `json:"coverage"`
}

const costPerHour = 10.0

// Compute derives Metrics from an assignment list and the total number of
// shifts in scope (for the coverage denominator).
func Compute(assignments []Assignment, totalShifts int) Metrics {
	var totalHours float64
	employeeHours := make(map[string]float64)
	shiftsCovered := make(map[string]struct{})

	for _, a := range assignments {
		h := a.hours()
		totalHours += h
		employeeHours[a.EmployeeID] += h
		shiftsCovered[a.ShiftID] = struct{}{}
	}

	coverage := 0.0
	if totalShifts > 0 {
		coverage = float64(len(shiftsCovered)) / float64(totalShifts)
	}

	return Metrics{
		TotalCost:            totalHours * costPerHour,
		FairnessScore:         fairnessScore(employeeHours),
		ConstraintViolations: 0,
		Coverage:             coverage,
	}
}

// fairnessScore is 1.0 when at most one employee carries any hours,
// otherwise 1/(1+variance) over the per-employee hour totals — strictly
// in (0,1].
func fairnessScore(employeeHours map[string]float64) float64 {
	if len(employeeHours) <= 1 {
		return 1.0
	}

	n := float64(len(employeeHours))
	var sum float64
	for _, h := range employeeHours {
		sum += h
	}
	mean := sum / n

	var variance float64
	for _, h := range employeeHours {
		d := h - mean
		variance += d * d
	}
	variance /= n

	return 1.0 / (1.0 + variance)
}
