// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/splitrand/generator"
	"github.com/ava-labs/splitrand/utils/constants"
	"github.com/ava-labs/splitrand/utils/logging"
)

const (
	configFileKey          = "config-file"
	generatorKey           = "generator"
	seedKey                = "seed"
	seedPhraseKey          = "seed-phrase"
	samplesKey             = "samples"
	bucketsKey             = "buckets"
	alphaKey               = "alpha"
	metricsFileKey         = "metrics-file"
	printMetricsKey        = "print-metrics"
	logLevelKey            = "log-level"
	logDisplayLevelKey     = "log-display-level"
	logDisplayHighlightKey = "log-display-highlight"
	logDirKey              = "log-dir"

	stdGenName   = "stdgen"
	splitMixName = "splitmix"
	xoshiroName  = "xoshiro"
)

var (
	defaultBuckets = []int{2, 3, 7, 10, 100, 1000}

	errUnknownGenerator = errors.New("unknown generator")
	errInvalidSamples   = errors.New("samples must be positive")
	errInvalidBuckets   = errors.New("every bucket count must be at least 2")
	errInvalidAlpha     = errors.New("alpha must be in (0, 1)")
)

// Config of a single randcheck run
type Config struct {
	Generator    string
	Seed         uint64
	Samples      int
	Buckets      []int
	Alpha        float64
	MetricsFile  string
	PrintMetrics bool
	Log          logging.Config
}

func buildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(constants.AppName, flag.ContinueOnError)

	fs.String(configFileKey, "", "Specifies a config file")
	fs.String(generatorKey, splitMixName, fmt.Sprintf("Generator to check, one of %s, %s, %s", stdGenName, splitMixName, xoshiroName))
	fs.Uint64(seedKey, 0, "Seed of the generator. 0 draws a seed from the operating system")
	fs.String(seedPhraseKey, "", "Derives the seed from this phrase. Overrides --seed")
	fs.Int(samplesKey, 100_000, "Number of draws per check")
	fs.Float64(alphaKey, 0.0001, "Significance level of every check")
	fs.String(metricsFileKey, "", "Writes the check metrics as JSON to this file")
	fs.Bool(printMetricsKey, false, "If true, prints the check metrics to stdout")

	// Logging
	fs.String(logLevelKey, logging.Info.String(), "The log level. Should be one of {verbo, debug, info, warn, error, fatal, off}")
	fs.String(logDisplayLevelKey, logging.Info.String(), "The log display level. Should be one of {verbo, debug, info, warn, error, fatal, off}")
	fs.String(logDisplayHighlightKey, "auto", "Whether to color/highlight display logs. Default highlights when the output is a terminal. Otherwise, should be one of {auto, plain, colors}")
	fs.String(logDirKey, "", "Logging directory. Logs are only displayed when empty")

	return fs
}

// getViper returns the viper environment from the parsed [args], the
// environment and the optional config file.
func getViper(args []string) (*viper.Viper, error) {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	fs.AddGoFlagSet(buildFlagSet())
	fs.IntSlice(bucketsKey, defaultBuckets, "Bucket counts to run uniformity checks with")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if v.IsSet(configFileKey) && v.GetString(configFileKey) != "" {
		v.SetConfigFile(os.ExpandEnv(v.GetString(configFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// getConfig sets attributes on [Config] based on the values defined in the
// [viper] environment.
func getConfig(v *viper.Viper) (Config, error) {
	config := Config{
		Generator:    strings.ToLower(v.GetString(generatorKey)),
		Seed:         v.GetUint64(seedKey),
		Samples:      v.GetInt(samplesKey),
		Buckets:      v.GetIntSlice(bucketsKey),
		Alpha:        v.GetFloat64(alphaKey),
		MetricsFile:  os.ExpandEnv(v.GetString(metricsFileKey)),
		PrintMetrics: v.GetBool(printMetricsKey),
	}

	switch config.Generator {
	case stdGenName, splitMixName, xoshiroName:
	default:
		return Config{}, fmt.Errorf("%w: %q", errUnknownGenerator, config.Generator)
	}
	if phrase := v.GetString(seedPhraseKey); phrase != "" {
		config.Seed = generator.SeedFromPhrase(phrase)
	}
	if config.Samples <= 0 {
		return Config{}, fmt.Errorf("%w: got %d", errInvalidSamples, config.Samples)
	}
	for _, buckets := range config.Buckets {
		if buckets < 2 {
			return Config{}, fmt.Errorf("%w: got %d", errInvalidBuckets, buckets)
		}
	}
	if config.Alpha <= 0 || config.Alpha >= 1 {
		return Config{}, fmt.Errorf("%w: got %f", errInvalidAlpha, config.Alpha)
	}

	logConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	config.Log = logConfig
	return config, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	config := logging.DefaultConfig(constants.AppName)
	config.Directory = os.ExpandEnv(v.GetString(logDirKey))

	var err error
	config.LogLevel, err = logging.ToLevel(v.GetString(logLevelKey))
	if err != nil {
		return config, err
	}
	config.DisplayLevel, err = logging.ToLevel(v.GetString(logDisplayLevelKey))
	if err != nil {
		return config, err
	}
	config.DisplayHighlight, err = logging.ToHighlight(v.GetString(logDisplayHighlightKey), os.Stdout.Fd())
	return config, err
}
