package filter

import (
	"encoding/json"
	"testing"
	"time"

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

func TestShiftsInWindowInclusiveOverlap(t *testing.T) {
	w0, _ := time.Parse(time.RFC3339, "2026-01-01T00:00:00Z")
	w1, _ := time.Parse(time.RFC3339, "2026-01-02T00:00:00Z")

	shifts := []domain.Shift{
		mustShift(t, "inside", "2026-01-01T08:00:00Z", "2026-01-01T16:00:00Z"),
		mustShift(t, "touches-start-only", "2025-12-31T16:00:00Z", "2026-01-01T00:00:00Z"),
		mustShift(t, "touches-end-only", "2026-01-02T00:00:00Z", "2026-01-02T08:00:00Z"),
		mustShift(t, "fully-before", "2025-12-30T00:00:00Z", "2025-12-31T00:00:00Z"),
		mustShift(t, "fully-after", "2026-01-03T00:00:00Z", "2026-01-04T00:00:00Z"),
	}

	got := ShiftsInWindow(shifts, w0, w1)
	if len(got) != 1 || got[0].ID != "inside" {
		ids := make([]string, len(got))
		for i, s := range got {
			ids[i] = s.ID
		}
		t.Fatalf("got shifts %v, want only [inside]", ids)
	}
}

func TestShiftsInWindowEmptyResult(t *testing.T) {
	w0, _ := time.Parse(time.RFC3339, "2030-01-01T00:00:00Z")
	w1, _ := time.Parse(time.RFC3339, "2030-01-02T00:00:00Z")

	shifts := []domain.Shift{
		mustShift(t, "s1", "2026-01-01T08:00:00Z", "2026-01-01T16:00:00Z"),
	}

	got := ShiftsInWindow(shifts, w0, w1)
	if len(got) != 0 {
		t.Errorf("got %d shifts, want 0", len(got))
	}
}
