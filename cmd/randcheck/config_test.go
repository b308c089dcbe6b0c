// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/splitrand/generator"
	"github.com/ava-labs/splitrand/utils/logging"
)

func TestGetConfigDefaults(t *testing.T) {
	require := require.New(t)

	v, err := getViper(nil)
	require.NoError(err)

	config, err := getConfig(v)
	require.NoError(err)
	require.Equal(splitMixName, config.Generator)
	require.Zero(config.Seed)
	require.Equal(100_000, config.Samples)
	require.Equal(defaultBuckets, config.Buckets)
	require.InDelta(0.0001, config.Alpha, 1e-12)
	require.Equal(logging.Info, config.Log.LogLevel)
	require.Empty(config.Log.Directory)
}

func TestGetConfigFlags(t *testing.T) {
	require := require.New(t)

	v, err := getViper([]string{
		"--generator=StdGen",
		"--seed=42",
		"--samples=10",
		"--buckets=3,5",
		"--alpha=0.01",
		"--log-level=debug",
		"--log-display-highlight=plain",
	})
	require.NoError(err)

	config, err := getConfig(v)
	require.NoError(err)
	require.Equal(stdGenName, config.Generator)
	require.Equal(uint64(42), config.Seed)
	require.Equal(10, config.Samples)
	require.Equal([]int{3, 5}, config.Buckets)
	require.InDelta(0.01, config.Alpha, 1e-12)
	require.Equal(logging.Debug, config.Log.LogLevel)
	require.Equal(logging.Plain, config.Log.DisplayHighlight)
}

func TestGetConfigSeedPhrase(t *testing.T) {
	require := require.New(t)

	v, err := getViper([]string{"--seed=42", "--seed-phrase=nightly"})
	require.NoError(err)

	config, err := getConfig(v)
	require.NoError(err)
	require.Equal(generator.SeedFromPhrase("nightly"), config.Seed)
}

func TestGetConfigEnv(t *testing.T) {
	require := require.New(t)

	t.Setenv("SPLITRAND_GENERATOR", "xoshiro")
	t.Setenv("SPLITRAND_SAMPLES", "77")

	v, err := getViper([]string{"--samples=5"})
	require.NoError(err)

	config, err := getConfig(v)
	require.NoError(err)
	require.Equal(xoshiroName, config.Generator)
	// flags take precedence over the environment
	require.Equal(5, config.Samples)
}

func TestGetConfigFile(t *testing.T) {
	require := require.New(t)

	configFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(os.WriteFile(configFile, []byte(`{
	"generator": "stdgen",
	"seed": 7,
	"buckets": [4, 9],
	"log-dir": "/tmp/splitrand-logs"
}`), 0o600))

	v, err := getViper([]string{"--config-file=" + configFile})
	require.NoError(err)

	config, err := getConfig(v)
	require.NoError(err)
	require.Equal(stdGenName, config.Generator)
	require.Equal(uint64(7), config.Seed)
	require.Equal([]int{4, 9}, config.Buckets)
	require.Equal("/tmp/splitrand-logs", config.Log.Directory)
}

func TestGetConfigMissingFile(t *testing.T) {
	_, err := getViper([]string{"--config-file=" + filepath.Join(t.TempDir(), "missing.json")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetConfigInvalid(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			name:        "unknown generator",
			args:        []string{"--generator=mt19937"},
			expectedErr: errUnknownGenerator,
		},
		{
			name:        "no samples",
			args:        []string{"--samples=0"},
			expectedErr: errInvalidSamples,
		},
		{
			name:        "single bucket",
			args:        []string{"--buckets=1"},
			expectedErr: errInvalidBuckets,
		},
		{
			name:        "alpha too large",
			args:        []string{"--alpha=1"},
			expectedErr: errInvalidAlpha,
		},
		{
			name:        "alpha zero",
			args:        []string{"--alpha=0"},
			expectedErr: errInvalidAlpha,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			v, err := getViper(test.args)
			require.NoError(err)

			_, err = getConfig(v)
			require.ErrorIs(err, test.expectedErr)
		})
	}
}

func TestGetConfigInvalidLogLevel(t *testing.T) {
	v, err := getViper([]string{"--log-level=loud"})
	require.NoError(t, err)

	_, err = getConfig(v)
	require.Error(t, err) //nolint:forbidigo // no sentinel error
}
