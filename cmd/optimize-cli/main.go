// package main holds the implementation of the optimize-cli template: a
// one-shot stdin/stdout entrypoint over the same facade the HTTP daemon
// uses, for local and batch runs.
package main

import (
	"context"
	"log"

	"github.com/nextmv-io/sdk/run"
	"github.com/nextmv-io/sdk/run/schema"

	"github.com/Kamul-droid/Scheduler/internal/domain"
	"github.com/Kamul-droid/Scheduler/internal/solver"
)

func main() {
	err := run.CLI(solve).Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}
}

// cliOptions exists so solve matches run.CLI's (ctx, input, options)
// shape; this template carries no flags of its own beyond what the
// request body already encodes in its nested "options" object.
type cliOptions struct{}

func solve(ctx context.Context, input domain.OptimizationRequest, _ cliOptions) (schema.Output, error) {
	result, err := solver.New(domain.DefaultMaxOptimizationTimeSeconds).Solve(ctx, input)
	if err != nil {
		return schema.Output{}, err
	}

	return schema.Output{
		Solutions: []any{result},
	}, nil
}
