package solver

import (
	"context"
	"testing"

	"github.com/Kamul-droid/Scheduler/internal/domain"
)

func mustRequest(t *testing.T, body string) domain.OptimizationRequest {
	t.Helper()
	req, err := domain.ParseOptimizationRequest([]byte(body))
	if err != nil {
		t.Fatalf("ParseOptimizationRequest: %v", err)
	}
	return req
}

func TestSolveFailsWhenNoShiftsOverlapWindow(t *testing.T) {
	req := mustRequest(t, `{
		"employees": [{"id":"e1","name":"Ada"}],
		"shifts": [{"id":"s1","department_id":"d1","min_staffing":0,"max_staffing":1,
			"start_time":"2020-01-01T08:00:00Z","end_time":"2020-01-01T16:00:00Z"}],
		"constraints": [],
		"startDate": "2026-01-01T00:00:00Z",
		"endDate": "2026-01-02T00:00:00Z"
	}`)

	result, err := New(domain.DefaultMaxOptimizationTimeSeconds).Solve(context.Background(), req)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result.Status != StatusFailed {
		t.Errorf("Status = %q, want %q", result.Status, StatusFailed)
	}
	if result.Message != msgNoShiftsInRange {
		t.Errorf("Message = %q, want %q", result.Message, msgNoShiftsInRange)
	}
	if len(result.Solutions) != 0 {
		t.Errorf("got %d solutions, want 0", len(result.Solutions))
	}
	if result.TotalSolveTime != 0 {
		t.Errorf("TotalSolveTime = %v, want 0", result.TotalSolveTime)
	}
}

func TestSolveRejectsMalformedWindow(t *testing.T) {
	req := mustRequest(t, `{
		"employees": [],
		"shifts": [],
		"startDate": "not-a-date",
		"endDate": "2026-01-02T00:00:00Z"
	}`)

	if _, err := New(domain.DefaultMaxOptimizationTimeSeconds).Solve(context.Background(), req); err == nil {
		t.Fatal("expected an error for a malformed startDate")
	}
}

