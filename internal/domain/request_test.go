package domain

import "testing"

func TestResolvedOptionsUsesConfiguredDefaultWhenOptionsOmitted(t *testing.T) {
	req, err := ParseOptimizationRequest([]byte(`{
		"employees": [], "shifts": [],
		"startDate": "2026-01-01T00:00:00Z", "endDate": "2026-01-02T00:00:00Z"
	}`))
	if err != nil {
		t.Fatalf("ParseOptimizationRequest: %v", err)
	}

	got := req.ResolvedOptions(90)
	if got.MaxOptimizationTime != 90 {
		t.Errorf("MaxOptimizationTime = %d, want the configured default 90", got.MaxOptimizationTime)
	}

	clamped := req.ResolvedOptions(10000)
	if clamped.MaxOptimizationTime != 300 {
		t.Errorf("MaxOptimizationTime = %d, want clamped to 300", clamped.MaxOptimizationTime)
	}
}

func TestResolvedOptionsIgnoresConfiguredDefaultWhenOptionsPresent(t *testing.T) {
	req, err := ParseOptimizationRequest([]byte(`{
		"employees": [], "shifts": [],
		"startDate": "2026-01-01T00:00:00Z", "endDate": "2026-01-02T00:00:00Z",
		"options": {"objective": "minimize_cost"}
	}`))
	if err != nil {
		t.Fatalf("ParseOptimizationRequest: %v", err)
	}

	got := req.ResolvedOptions(90)
	if got.MaxOptimizationTime != defaultMaxOptimizationTime {
		t.Errorf("MaxOptimizationTime = %d, want the package default %d since options.maxOptimizationTime was merely omitted, not the object itself",
			got.MaxOptimizationTime, defaultMaxOptimizationTime)
	}
}
