// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stats provides the statistical acceptance checks used to validate
// generators and samplers.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrTooFewBuckets    = errors.New("at least two buckets are required")
	ErrNoObservations   = errors.New("no observations")
	ErrInvalidAlpha     = errors.New("significance level must be in (0, 1)")
	ErrMismatchedLength = errors.New("samples have different lengths")
)

// Result of a chi-squared goodness of fit test.
type Result struct {
	Statistic        float64 `json:"statistic"`
	Critical         float64 `json:"critical"`
	DegreesOfFreedom int     `json:"degreesOfFreedom"`
}

// Passed reports whether the null hypothesis survives the test.
func (r Result) Passed() bool {
	return r.Statistic <= r.Critical
}

// ChiSquared returns Pearson's statistic of [counts] against a uniform
// expectation.
func ChiSquared(counts []uint64) float64 {
	total := uint64(0)
	for _, c := range counts {
		total += c
	}

	observed := make([]float64, len(counts))
	expected := make([]float64, len(counts))
	mean := float64(total) / float64(len(counts))
	for i, c := range counts {
		observed[i] = float64(c)
		expected[i] = mean
	}
	return stat.ChiSquare(observed, expected)
}

// ChiSquaredCritical returns the value a statistic with [df] degrees of
// freedom exceeds with probability [alpha].
func ChiSquaredCritical(df int, alpha float64) float64 {
	return distuv.ChiSquared{K: float64(df)}.Quantile(1 - alpha)
}

// Uniformity tests whether [counts] are consistent with a uniform
// distribution at significance level [alpha].
func Uniformity(counts []uint64, alpha float64) (Result, error) {
	if len(counts) < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrTooFewBuckets, len(counts))
	}
	if alpha <= 0 || alpha >= 1 {
		return Result{}, fmt.Errorf("%w: got %f", ErrInvalidAlpha, alpha)
	}

	total := uint64(0)
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return Result{}, ErrNoObservations
	}

	df := len(counts) - 1
	return Result{
		Statistic:        ChiSquared(counts),
		Critical:         ChiSquaredCritical(df, alpha),
		DegreesOfFreedom: df,
	}, nil
}

// Correlation returns Pearson's correlation coefficient of [x] and [y].
func Correlation(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d != %d", ErrMismatchedLength, len(x), len(y))
	}
	if len(x) < 2 {
		return 0, ErrNoObservations
	}
	return stat.Correlation(x, y, nil), nil
}

// CorrelationCritical returns the absolute correlation two independent
// samples of size [n] exceed with probability [alpha], using the normal
// approximation of the coefficient's distribution.
func CorrelationCritical(n int, alpha float64) float64 {
	return distuv.UnitNormal.Quantile(1-alpha/2) / math.Sqrt(float64(n))
}

// Independence tests whether [x] and [y] are uncorrelated at significance
// level [alpha]. The statistic is the absolute correlation coefficient; a
// constant sample yields NaN, which never passes.
func Independence(x, y []float64, alpha float64) (Result, error) {
	if alpha <= 0 || alpha >= 1 {
		return Result{}, fmt.Errorf("%w: got %f", ErrInvalidAlpha, alpha)
	}
	r, err := Correlation(x, y)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Statistic: math.Abs(r),
		Critical:  CorrelationCritical(len(x), alpha),
	}, nil
}
