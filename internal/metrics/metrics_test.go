package metrics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/Kamul-droid/Scheduler/internal/domain"
)

func mustShift(t *testing.T, id, start, end string) domain.Shift {
	t.Helper()
	raw := `{"id":"` + id + `","department_id":"d1","min_staffing":0,"max_staffing":1,` +
		`"start_time":"` + start + `","end_time":"` + end + `"}`
	var s domain.Shift
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal shift %s: %v", id, err)
	}
	return s
}

func TestComputeFairnessSingleEmployee(t *testing.T) {
	shift := mustShift(t, "s1", "2026-01-01T08:00:00Z", "2026-01-01T16:00:00Z")
	assignments := []Assignment{NewAssignment("e1", shift)}

	m := Compute(assignments, 1)
	if m.FairnessScore != 1.0 {
		t.Errorf("FairnessScore = %v, want 1.0 with a single employee", m.FairnessScore)
	}
	if m.Coverage != 1.0 {
		t.Errorf("Coverage = %v, want 1.0", m.Coverage)
	}
}

func TestComputeFairnessSplitsCorrectly(t *testing.T) {
	s1 := mustShift(t, "s1", "2026-01-01T08:00:00Z", "2026-01-01T16:00:00Z")
	s2 := mustShift(t, "s2", "2026-01-02T08:00:00Z", "2026-01-02T16:00:00Z")

	assignments := []Assignment{
		NewAssignment("e1", s1),
		NewAssignment("e2", s2),
	}

	m := Compute(assignments, 2)
	if m.FairnessScore != 1.0 {
		t.Errorf("FairnessScore = %v, want 1.0 for equal hour split", m.FairnessScore)
	}
}

func TestComputeFairnessUnequalSplit(t *testing.T) {
	s1 := mustShift(t, "s1", "2026-01-01T00:00:00Z", "2026-01-01T08:00:00Z")
	s2 := mustShift(t, "s2", "2026-01-02T00:00:00Z", "2026-01-02T01:00:00Z")

	assignments := []Assignment{
		NewAssignment("e1", s1),
		NewAssignment("e2", s2),
	}

	m := Compute(assignments, 2)
	if m.FairnessScore <= 0 || m.FairnessScore >= 1.0 {
		t.Errorf("FairnessScore = %v, want strictly in (0,1) for an unequal split", m.FairnessScore)
	}
}

func TestComputeCoverageZeroShifts(t *testing.T) {
	m := Compute(nil, 0)
	if m.Coverage != 0 {
		t.Errorf("Coverage = %v, want 0 when totalShifts is 0", m.Coverage)
	}
}

func TestComputeTotalCost(t *testing.T) {
	s1 := mustShift(t, "s1", "2026-01-01T00:00:00Z", "2026-01-01T10:00:00Z")
	assignments := []Assignment{NewAssignment("e1", s1)}

	m := Compute(assignments, 1)
	want := 10.0 * costPerHour
	if math.Abs(m.TotalCost-want) > 1e-9 {
		t.Errorf("TotalCost = %v, want %v", m.TotalCost, want)
	}
}

func TestNewAssignmentFromTimesRejectsBadFormat(t *testing.T) {
	if _, err := NewAssignmentFromTimes("e1", "s1", "not-a-time", "2026-01-01T00:00:00Z"); err == nil {
		t.Fatal("expected an error for a non-RFC3339 startTime")
	}
}
