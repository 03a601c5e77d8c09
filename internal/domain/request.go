package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// OptimizationRequest is the full input to a schedule optimization call.
type OptimizationRequest struct {
	Employees        []Employee            `json:"employees"`
	Shifts           []Shift                `json:"shifts"`
	Constraints      []Constraint           `json:"constraints"`
	CurrentSchedules []ExistingAssignment   `json:"currentSchedules,omitempty"`
	StartDate        string                 `json:"startDate"`
	EndDate          string                 `json:"endDate"`
	Options          *OptimizationOptions   `json:"options,omitempty"`
}

// Window parses StartDate/EndDate into the [W0, W1) instant pair used by
// the shift window filter.
func (r OptimizationRequest) Window() (start, end time.Time, err error) {
	start, err = time.Parse(time.RFC3339, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("startDate: %w", err)
	}
	end, err = time.Parse(time.RFC3339, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate: %w", err)
	}
	return start, end, nil
}

// ActiveConstraints returns only the constraints with Active == true.
func (r OptimizationRequest) ActiveConstraints() []Constraint {
	active := make([]Constraint, 0, len(r.Constraints))
	for _, c := range r.Constraints {
		if c.Active {
			active = append(active, c)
		}
	}
	return active
}

// ResolvedOptions returns r.Options, or the documented defaults if the
// request omitted the whole `options` object. defaultMaxOptimizationTime
// overrides the package default's MaxOptimizationTime in that omitted-object
// case only — a request that supplies `options` but leaves
// maxOptimizationTime unset still resolves to the package default, since
// OptimizationOptions.UnmarshalJSON bakes that default in at unmarshal time
// and no later layer can tell omitted-field from explicitly-set.
func (r OptimizationRequest) ResolvedOptions(defaultMaxOptimizationTime int) OptimizationOptions {
	if r.Options == nil {
		o := DefaultOptions()
		o.MaxOptimizationTime = ClampMaxOptimizationTime(defaultMaxOptimizationTime)
		return o
	}
	return *r.Options
}

// ConfirmedSchedules returns the subset of CurrentSchedules with
// status == confirmed, used for fallback solution synthesis.
func (r OptimizationRequest) ConfirmedSchedules() []ExistingAssignment {
	confirmed := make([]ExistingAssignment, 0, len(r.CurrentSchedules))
	for _, a := range r.CurrentSchedules {
		if a.Confirmed() {
			confirmed = append(confirmed, a)
		}
	}
	return confirmed
}

// ParseOptimizationRequest decodes and validates a request body.
func ParseOptimizationRequest(data []byte) (OptimizationRequest, error) {
	var req OptimizationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return OptimizationRequest{}, err
	}
	return req, nil
}
