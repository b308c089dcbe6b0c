// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/splitrand/utils/perms"
)

// RotatingWriterConfig configures the on-disk log file.
type RotatingWriterConfig struct {
	MaxSize   int    `json:"maxSize"` // in megabytes
	MaxFiles  int    `json:"maxFiles"`
	MaxAge    int    `json:"maxAge"` // in days
	Directory string `json:"directory"`
	Compress  bool   `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool      `json:"disableWriterDisplaying"`
	LogLevel                Level     `json:"logLevel"`
	DisplayLevel            Level     `json:"displayLevel"`
	DisplayHighlight        Highlight `json:"displayHighlight"`
	MsgPrefix               string    `json:"-"`
	LoggerName              string    `json:"-"`
}

func DefaultConfig(name string) Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  8,
			MaxFiles: 7,
			MaxAge:   0,
		},
		LogLevel:         Info,
		DisplayLevel:     Info,
		DisplayHighlight: Plain,
		LoggerName:       name,
	}
}

// NewFromConfig returns a logger displaying to stdout and, when a directory is
// configured, writing to a rotated file named after the logger.
func NewFromConfig(config Config) (Logger, error) {
	return newFromConfig(config, nopCloser{Writer: os.Stdout})
}

func newFromConfig(config Config, display io.WriteCloser) (Logger, error) {
	consoleCore := NewWrappedCore(config.DisplayLevel, display, config.DisplayHighlight.ConsoleEncoder())
	consoleCore.WriterDisabled = config.DisableWriterDisplaying
	cores := []WrappedCore{consoleCore}

	if config.Directory != "" {
		if err := os.MkdirAll(config.Directory, perms.ReadWriteExecute); err != nil {
			return nil, fmt.Errorf("couldn't create log directory %q: %w", config.Directory, err)
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, config.LoggerName+".log"),
			MaxSize:    config.MaxSize,
			MaxAge:     config.MaxAge,
			MaxBackups: config.MaxFiles,
			Compress:   config.Compress,
		}
		cores = append(cores, NewWrappedCore(config.LogLevel, rw, FileEncoder()))
	}
	return NewLogger(config.MsgPrefix, cores...), nil
}

// nopCloser keeps the process' standard streams open when a logger stops.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
