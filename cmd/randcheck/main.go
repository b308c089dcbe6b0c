// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// randcheck runs statistical acceptance checks against a generator.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/splitrand/generator"
	"github.com/ava-labs/splitrand/utils/constants"
	"github.com/ava-labs/splitrand/utils/logging"
	"github.com/ava-labs/splitrand/utils/metric"
)

var errChecksFailed = errors.New("checks failed")

func main() {
	v, err := getViper(os.Args[1:])
	if err != nil {
		fmt.Printf("couldn't parse flags: %s\n", err)
		os.Exit(1)
	}
	config, err := getConfig(v)
	if err != nil {
		fmt.Printf("couldn't load config: %s\n", err)
		os.Exit(1)
	}

	log, err := logging.NewFromConfig(config.Log)
	if err != nil {
		fmt.Printf("couldn't create logger: %s\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	log.RecoverAndExit(func() {
		if err := run(ctx, log, config); err != nil {
			log.Error("randcheck failed", zap.Error(err))
			exitCode = 1
		}
	}, func() {
		exitCode = 1
	})
	cancel()
	log.Stop()
	os.Exit(exitCode)
}

func run(ctx context.Context, log logging.Logger, config Config) error {
	if config.Seed == 0 {
		seed, err := generator.NewSeed()
		if err != nil {
			return err
		}
		config.Seed = seed
	}
	log = log.With(
		zap.String("generator", config.Generator),
		zap.Uint64("seed", config.Seed),
	)
	log.Info("starting checks",
		zap.Int("samples", config.Samples),
		zap.Ints("buckets", config.Buckets),
		zap.Float64("alpha", config.Alpha),
	)

	registry := prometheus.NewRegistry()
	checks := metric.NewChecks(constants.AppName)
	if err := checks.Register(registry); err != nil {
		return err
	}

	c := &checker{
		log:       log,
		metrics:   checks,
		generator: config.Generator,
		samples:   config.Samples,
		alpha:     config.Alpha,
	}

	var (
		failed int
		err    error
	)
	switch config.Generator {
	case stdGenName:
		failed, err = runChecks(ctx, c, generator.NewStdGen(config.Seed), config.Buckets)
	case splitMixName:
		failed, err = runChecks(ctx, c, generator.NewSplitMix(config.Seed), config.Buckets)
	case xoshiroName:
		failed, err = runChecks(ctx, c, generator.NewXoshiro(config.Seed), config.Buckets)
	default:
		return fmt.Errorf("%w: %q", errUnknownGenerator, config.Generator)
	}
	if err != nil {
		return err
	}

	if config.PrintMetrics || config.MetricsFile != "" {
		if err := metric.Print(registry, config.MetricsFile, os.Stdout); err != nil {
			return fmt.Errorf("couldn't print metrics: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d failed", errChecksFailed, failed)
	}
	log.Info("all checks passed")
	return nil
}
