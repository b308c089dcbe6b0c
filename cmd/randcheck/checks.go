// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/splitrand/generator"
	"github.com/ava-labs/splitrand/random"
	"github.com/ava-labs/splitrand/utils/logging"
	"github.com/ava-labs/splitrand/utils/metric"
	"github.com/ava-labs/splitrand/utils/stats"
	"github.com/ava-labs/splitrand/utils/timer/mockable"
)

// Draws between context checks.
const cancellationInterval = 1 << 12

type check[G generator.Generator[G]] struct {
	name string
	run  func(ctx context.Context, g G) (stats.Result, error)
}

// checker runs every check against its own branch of a generator.
type checker struct {
	clock     mockable.Clock
	log       logging.Logger
	metrics   metric.Checks
	generator string
	samples   int
	alpha     float64
}

// runChecks returns the number of failed checks.
func runChecks[G generator.Generator[G]](ctx context.Context, c *checker, g G, buckets []int) (int, error) {
	checks := make([]check[G], 0, len(buckets)+3)
	for _, n := range buckets {
		checks = append(checks, uniformityCheck[G](c, n))
	}
	checks = append(checks,
		boolCheck[G](c),
		splitCheck[G](c),
		seriesCheck[G](c),
	)

	// Branches are derived before any check starts so that the outcome does
	// not depend on scheduling.
	branches := make([]G, len(checks))
	for i := range branches {
		branches[i], g = g.Split()
	}

	outcomes := make([]metric.Outcome, len(checks))
	eg, ctx := errgroup.WithContext(ctx)
	for i, chk := range checks {
		i, chk := i, chk
		eg.Go(func() error {
			start := c.clock.Time()
			result, err := chk.run(ctx, branches[i])
			if err != nil {
				return fmt.Errorf("check %s: %w", chk.name, err)
			}
			outcomes[i] = metric.Outcome{
				Generator: c.generator,
				Check:     chk.name,
				Statistic: result.Statistic,
				Critical:  result.Critical,
				Passed:    result.Passed(),
				Duration:  c.clock.Since(start),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	failed := 0
	for _, outcome := range outcomes {
		c.metrics.Observe(outcome)

		fields := []zap.Field{
			zap.String("check", outcome.Check),
			zap.Float64("statistic", outcome.Statistic),
			zap.Float64("critical", outcome.Critical),
			zap.Duration("duration", outcome.Duration),
		}
		if !outcome.Passed {
			failed++
			c.log.Error("check failed", fields...)
			continue
		}
		c.log.Info("check passed", fields...)
	}
	return failed, nil
}

// uniformityCheck draws from [0, n) and tests the counts for uniformity.
func uniformityCheck[G generator.Generator[G]](c *checker, n int) check[G] {
	return check[G]{
		name: fmt.Sprintf("uniformity_%d", n),
		run: func(ctx context.Context, g G) (stats.Result, error) {
			sample, err := random.UintRange[G](uint64(0), uint64(n-1))
			if err != nil {
				return stats.Result{}, err
			}

			counts := make([]uint64, n)
			for i := 0; i < c.samples; i++ {
				if i%cancellationInterval == 0 {
					if err := ctx.Err(); err != nil {
						return stats.Result{}, err
					}
				}
				var v uint64
				v, g = sample(g)
				counts[v]++
			}
			return stats.Uniformity(counts, c.alpha)
		},
	}
}

func boolCheck[G generator.Generator[G]](c *checker) check[G] {
	return check[G]{
		name: "uniformity_bool",
		run: func(ctx context.Context, g G) (stats.Result, error) {
			sample := random.Bool[G]()

			counts := make([]uint64, 2)
			for i := 0; i < c.samples; i++ {
				if i%cancellationInterval == 0 {
					if err := ctx.Err(); err != nil {
						return stats.Result{}, err
					}
				}
				var b bool
				b, g = sample(g)
				if b {
					counts[1]++
				} else {
					counts[0]++
				}
			}
			return stats.Uniformity(counts, c.alpha)
		},
	}
}

// splitCheck tests that the two branches of every split are uncorrelated.
func splitCheck[G generator.Generator[G]](c *checker) check[G] {
	return check[G]{
		name: "split_correlation",
		run: func(ctx context.Context, g G) (stats.Result, error) {
			sample := random.Uint64Inclusive[G](1<<32 - 1)

			left := make([]float64, c.samples)
			right := make([]float64, c.samples)
			for i := 0; i < c.samples; i++ {
				if i%cancellationInterval == 0 {
					if err := ctx.Err(); err != nil {
						return stats.Result{}, err
					}
				}
				l, r := g.Split()
				lv, _ := sample(l)
				rv, next := sample(r)
				left[i] = float64(lv)
				right[i] = float64(rv)
				g = next
			}
			return stats.Independence(left, right, c.alpha)
		},
	}
}

// seriesCheck tests that neighbouring elements of a lazy series are
// uncorrelated.
func seriesCheck[G generator.Generator[G]](c *checker) check[G] {
	return check[G]{
		name: "series_correlation",
		run: func(ctx context.Context, g G) (stats.Result, error) {
			series, err := random.RandomSeriesRange[G, uint32](random.Unsigned[uint32]{}, 0, 1<<32-1)
			if err != nil {
				return stats.Result{}, err
			}
			stream, _ := series(g)
			defer stream.Release()

			values := make([]float64, c.samples+1)
			for i := range values {
				if i%cancellationInterval == 0 {
					if err := ctx.Err(); err != nil {
						return stats.Result{}, err
					}
				}
				stream.Next()
				values[i] = float64(stream.Value())
			}
			return stats.Independence(values[:c.samples], values[1:], c.alpha)
		},
	}
}
