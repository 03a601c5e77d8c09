package domain

import "encoding/json"

// Objective selects the scalar the solver minimizes.
const (
	ObjectiveMinimizeCost     = "minimize_cost"
	ObjectiveMaximizeFairness = "maximize_fairness"
	ObjectiveBalance          = "balance"
)

const (
	defaultMaxOptimizationTime = 30
	defaultSolutionCount       = 3
	minMaxOptimizationTime     = 1
	maxMaxOptimizationTime     = 300
	minSolutionCount           = 1
	maxSolutionCount           = 10
)

// DefaultMaxOptimizationTimeSeconds is the solve budget DefaultOptions
// applies, and the value callers without a configured override (the CLI
// entrypoint) should pass where one is asked for.
const DefaultMaxOptimizationTimeSeconds = defaultMaxOptimizationTime

// ClampMaxOptimizationTime applies the same [1,300] bound the wire
// schema enforces during JSON unmarshaling, for callers that construct a
// maxOptimizationTime value outside that path (a configuration-driven
// default, for instance).
func ClampMaxOptimizationTime(v int) int {
	return clamp(v, minMaxOptimizationTime, maxMaxOptimizationTime)
}

// OptimizationOptions tunes the solve: which objective to optimize, the
// wall-clock budget, and how many candidate solutions to return.
type OptimizationOptions struct {
	Objective           string `json:"objective"`
	AllowOvertime       bool   `json:"allowOvertime"`
	MaxOptimizationTime int    `json:"maxOptimizationTime"`
	SolutionCount       int    `json:"solutionCount"`
}

// UnmarshalJSON applies defaults for omitted fields and clamps
// out-of-range values, so every code path that constructs options from
// raw input (HTTP, CLI) gets the same guarantees as the wire schema.
func (o *OptimizationOptions) UnmarshalJSON(data []byte) error {
	type alias OptimizationOptions
	wire := alias{
		Objective:           ObjectiveBalance,
		MaxOptimizationTime: defaultMaxOptimizationTime,
		SolutionCount:       defaultSolutionCount,
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*o = OptimizationOptions(wire)
	o.applyDefaultsAndClamp()
	return nil
}

func (o *OptimizationOptions) applyDefaultsAndClamp() {
	switch o.Objective {
	case ObjectiveMinimizeCost, ObjectiveMaximizeFairness, ObjectiveBalance:
	default:
		o.Objective = ObjectiveBalance
	}
	if o.MaxOptimizationTime == 0 {
		o.MaxOptimizationTime = defaultMaxOptimizationTime
	}
	o.MaxOptimizationTime = clamp(o.MaxOptimizationTime, minMaxOptimizationTime, maxMaxOptimizationTime)

	if o.SolutionCount == 0 {
		o.SolutionCount = defaultSolutionCount
	}
	o.SolutionCount = clamp(o.SolutionCount, minSolutionCount, maxSolutionCount)
}

// DefaultOptions returns the options a request with no `options` field
// resolves to.
func DefaultOptions() OptimizationOptions {
	o := OptimizationOptions{
		Objective:           ObjectiveBalance,
		MaxOptimizationTime: defaultMaxOptimizationTime,
		SolutionCount:       defaultSolutionCount,
	}
	return o
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
