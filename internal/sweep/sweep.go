// Package sweep checks that tarai variants agree on every triple of a range.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/on-the-ground/tarai/internal/dispatch"
	"github.com/on-the-ground/tarai/internal/log"
	"github.com/on-the-ground/tarai/internal/orderedbuffer"
	"github.com/on-the-ground/tarai/tarai"
)

// ErrNoVariants is returned when Run is given no variants.
var ErrNoVariants = errors.New("no variants to compare")

// Mismatch records a triple on which the variants disagree.
type Mismatch struct {
	Input   [3]int
	Results map[tarai.Variant]int
}

func (m *Mismatch) Error() string {
	parts := make([]string, 0, len(m.Results))
	for _, v := range tarai.Variants() {
		if r, ok := m.Results[v]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", v, r))
		}
	}
	return fmt.Sprintf("tarai(%d, %d, %d) mismatch: %s",
		m.Input[0], m.Input[1], m.Input[2], strings.Join(parts, " "))
}

type Report struct {
	RunID string
	// Checked is the number of triples evaluated.
	Checked int
	// Skipped is the number of naive evaluations left out by NaiveSpan.
	Skipped    int
	Mismatches []*Mismatch
}

type job struct {
	seq     int
	x, y, z int
}

func (j job) PartitionKey() string {
	return strconv.Itoa(j.x) + "," + strconv.Itoa(j.y) + "," + strconv.Itoa(j.z)
}

type outcome struct {
	seq      int
	skipped  int
	mismatch *Mismatch
}

// evaluator runs each job through the selected variants.
type evaluator struct {
	variants  []tarai.Variant
	funcs     []tarai.Func
	naiveSpan int
}

func newEvaluator(variants []tarai.Variant, naiveSpan int) evaluator {
	funcs := make([]tarai.Func, len(variants))
	for i, v := range variants {
		funcs[i] = v.Func()
	}
	return evaluator{variants: variants, funcs: funcs, naiveSpan: naiveSpan}
}

func (e evaluator) evaluate(j job) outcome {
	o := outcome{seq: j.seq}
	results := make(map[tarai.Variant]int, len(e.variants))
	agree, first := true, 0
	for i, v := range e.variants {
		if v == tarai.VariantNaive && j.x-j.y > e.naiveSpan {
			o.skipped++
			continue
		}
		r := e.funcs[i](j.x, j.y, j.z)
		if len(results) == 0 {
			first = r
		} else if r != first {
			agree = false
		}
		results[v] = r
	}
	if !agree {
		o.mismatch = &Mismatch{Input: [3]int{j.x, j.y, j.z}, Results: results}
	}
	return o
}

// Run evaluates every triple of the configured range with each of variants
// and reports the triples where they disagree. The returned error combines
// every *Mismatch, or is the reason the sweep could not finish.
// A log handler must be registered in ctx.
func Run(ctx context.Context, variants []tarai.Variant) (Report, error) {
	if len(variants) == 0 {
		return Report{}, ErrNoVariants
	}
	cfg, err := ConfigFrom(ctx)
	if err != nil {
		return Report{}, err
	}
	return newEvaluator(variants, cfg.NaiveSpan).run(ctx, cfg)
}

func (e evaluator) run(ctx context.Context, cfg Config) (Report, error) {
	report := Report{RunID: uuid.New().String()}
	total := cfg.Total()
	log.LogEff(ctx, log.LogInfo, "sweep started", map[string]interface{}{
		"run_id":   report.RunID,
		"min":      cfg.Min,
		"max":      cfg.Max,
		"triples":  total,
		"workers":  cfg.NumWorkers,
		"variants": fmt.Sprint(e.variants),
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	dcfg := dispatch.NewConfig(cfg.BufferSize, cfg.NumWorkers)
	outcomes := make(chan outcome, dcfg.BufferSize)
	d := dispatch.New(runCtx, dcfg, func(ctx context.Context, j job) {
		select {
		case outcomes <- e.evaluate(j):
		case <-ctx.Done():
		}
	})

	// A job holds a slot from dispatch until its outcome leaves the buffer, so
	// the buffer never has to hold more than window outcomes.
	window := cfg.window()
	slots := make(chan struct{}, window)
	go func() {
		defer close(outcomes)
		defer d.Close()
		for seq := 0; seq < total; seq++ {
			select {
			case slots <- struct{}{}:
			case <-runCtx.Done():
				return
			}
			x, y, z := cfg.triple(seq)
			if err := d.Send(runCtx, job{seq: seq, x: x, y: y, z: z}); err != nil {
				return
			}
		}
	}()

	next := 0
	buf := orderedbuffer.NewOrderedBoundedBuffer(window,
		func(a, b outcome) int {
			return a.seq - b.seq
		},
		func(head outcome) bool {
			if head.seq != next {
				return false
			}
			next++
			return true
		},
	)
	collected := make(chan error, 1)
	go func() {
		collected <- collect(runCtx, outcomes, buf)
	}()

	var mismatchErr error
	for o := range buf.Source() {
		<-slots
		report.Checked++
		report.Skipped += o.skipped
		if o.mismatch != nil {
			report.Mismatches = append(report.Mismatches, o.mismatch)
			mismatchErr = multierr.Append(mismatchErr, o.mismatch)
			log.LogEff(ctx, log.LogWarn, "variants disagree", map[string]interface{}{
				"run_id": report.RunID,
				"error":  o.mismatch.Error(),
			})
		}
	}
	if err := <-collected; err != nil {
		return report, fmt.Errorf("sweep %s: %w", report.RunID, err)
	}

	log.LogEff(ctx, log.LogInfo, "sweep finished", map[string]interface{}{
		"run_id":     report.RunID,
		"checked":    report.Checked,
		"skipped":    report.Skipped,
		"mismatches": len(report.Mismatches),
	})
	return report, mismatchErr
}

// collect moves every outcome into buf and closes it. outcomes is closed once
// dispatch has stopped.
func collect(
	ctx context.Context,
	outcomes <-chan outcome,
	buf *orderedbuffer.OrderedBoundedBuffer[outcome],
) error {
	for o := range outcomes {
		if err := buf.Insert(ctx, o); err != nil {
			_ = buf.Close(ctx)
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		_ = buf.Close(ctx)
		return err
	}
	return buf.Close(ctx)
}
