// Package bench times repeated top-level evaluations of a tarai variant.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/tarai/internal/binding"
	"github.com/on-the-ground/tarai/internal/configkeys"
	"github.com/on-the-ground/tarai/internal/log"
	"github.com/on-the-ground/tarai/tarai"
)

const DefaultIterations = 1000

// ctxCheckEvery is how many iterations run between context checks.
const ctxCheckEvery = 64

// ErrInvalidIterations is returned by Run when iterations is not positive.
var ErrInvalidIterations = errors.New("iterations must be positive")

type Result struct {
	RunID      string
	Variant    tarai.Variant
	Input      [3]int
	Iterations int
	Value      int
	// Stats are those of a single evaluation.
	Stats tarai.Stats
	Span  timespan.TimeSpan
}

func (r Result) PerCall() time.Duration {
	return r.Span.Duration() / time.Duration(r.Iterations)
}

func (r Result) String() string {
	return fmt.Sprintf("%-12s tarai(%d, %d, %d) = %d  %s/op  %s calls/op  (%s iterations)",
		r.Variant, r.Input[0], r.Input[1], r.Input[2], r.Value,
		r.PerCall(), humanize.Comma(int64(r.Stats.Calls)), humanize.Comma(int64(r.Iterations)),
	)
}

// Run evaluates v on (x, y, z) as many times as configured under
// config.tarai.bench.iterations. Every iteration is a fresh top-level call.
// A log handler must be registered in ctx.
func Run(ctx context.Context, v tarai.Variant, x, y, z int) (Result, error) {
	iterations, err := binding.GetOr(ctx, configkeys.ConfigBenchIterations, DefaultIterations)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", configkeys.ConfigBenchIterations, err)
	}
	if iterations <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}

	res := Result{
		RunID:      uuid.New().String(),
		Variant:    v,
		Input:      [3]int{x, y, z},
		Iterations: iterations,
	}
	res.Value, res.Stats = v.Evaluate(x, y, z)

	fn := v.Func()
	var sink int
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		sink = fn(x, y, z)
	}
	res.Span = timespan.BetweenTimes(start, time.Now())

	if sink != res.Value {
		return Result{}, fmt.Errorf("%s returned %d, then %d", v, res.Value, sink)
	}

	log.LogEff(ctx, log.LogInfo, "bench finished", map[string]interface{}{
		"run_id":     res.RunID,
		"variant":    v.String(),
		"input":      res.Input,
		"iterations": iterations,
		"per_call":   res.PerCall().String(),
		"calls":      res.Stats.Calls,
	})
	return res, nil
}

// RunAll runs every variant in vs on the same input, stopping at the first error.
func RunAll(ctx context.Context, vs []tarai.Variant, x, y, z int) ([]Result, error) {
	results := make([]Result, 0, len(vs))
	for _, v := range vs {
		res, err := Run(ctx, v, x, y, z)
		if err != nil {
			return results, fmt.Errorf("bench %s: %w", v, err)
		}
		results = append(results, res)
	}
	return results, nil
}
