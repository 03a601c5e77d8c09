package domain

import (
	"encoding/json"
	"testing"
)

func TestShiftRequiredSkillsShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "array of strings",
			raw:  `["nursing","cpr"]`,
			want: []string{"nursing", "cpr"},
		},
		{
			name: "array of objects",
			raw:  `[{"name":"nursing"},{"name":"cpr"}]`,
			want: []string{"nursing", "cpr"},
		},
		{
			name: "map of name to bool",
			raw:  `{"nursing":true,"cpr":true,"surgery":false}`,
			want: []string{"nursing", "cpr"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := `{"id":"s1","department_id":"d1","min_staffing":1,"max_staffing":2,` +
				`"start_time":"2026-01-01T08:00:00Z","end_time":"2026-01-01T16:00:00Z",` +
				`"required_skills":` + tc.raw + `}`

			var s Shift
			if err := json.Unmarshal([]byte(body), &s); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			got := s.RequiredSkills()
			if len(got) != len(tc.want) {
				t.Fatalf("got %d required skills, want %d", len(got), len(tc.want))
			}
			for _, name := range tc.want {
				if _, ok := got[name]; !ok {
					t.Errorf("missing required skill %q", name)
				}
			}
		})
	}
}

func TestShiftStaffingInvariant(t *testing.T) {
	body := `{"id":"s1","department_id":"d1","min_staffing":3,"max_staffing":2,` +
		`"start_time":"2026-01-01T08:00:00Z","end_time":"2026-01-01T16:00:00Z"}`

	var s Shift
	if err := json.Unmarshal([]byte(body), &s); err == nil {
		t.Fatal("expected error when max_staffing < min_staffing")
	}
}

func TestShiftStartBeforeEndInvariant(t *testing.T) {
	body := `{"id":"s1","department_id":"d1","min_staffing":1,"max_staffing":2,` +
		`"start_time":"2026-01-01T16:00:00Z","end_time":"2026-01-01T08:00:00Z"}`

	var s Shift
	if err := json.Unmarshal([]byte(body), &s); err == nil {
		t.Fatal("expected error when start_time is not before end_time")
	}
}

func TestShiftDurationMinutes(t *testing.T) {
	body := `{"id":"s1","department_id":"d1","min_staffing":1,"max_staffing":2,` +
		`"start_time":"2026-01-01T08:00:00Z","end_time":"2026-01-01T16:30:00Z"}`

	var s Shift
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got, want := s.DurationMinutes(), int64(510); got != want {
		t.Errorf("DurationMinutes() = %d, want %d", got, want)
	}
}
