package domain

import (
	"encoding/json"
	"testing"
)

func TestOptimizationOptionsDefaults(t *testing.T) {
	var o OptimizationOptions
	if err := json.Unmarshal([]byte(`{}`), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := DefaultOptions()
	if o != want {
		t.Errorf("got %+v, want %+v", o, want)
	}
}

func TestOptimizationOptionsClamping(t *testing.T) {
	var o OptimizationOptions
	raw := `{"maxOptimizationTime":10000,"solutionCount":0,"objective":"not_a_real_objective"}`
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if o.MaxOptimizationTime != 300 {
		t.Errorf("MaxOptimizationTime = %d, want clamped to 300", o.MaxOptimizationTime)
	}
	if o.SolutionCount != 3 {
		t.Errorf("SolutionCount = %d, want defaulted to 3", o.SolutionCount)
	}
	if o.Objective != ObjectiveBalance {
		t.Errorf("Objective = %q, want fallback to %q", o.Objective, ObjectiveBalance)
	}
}
