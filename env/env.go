//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements global configuration for the SHA-1 tools.
package env

import (
	"crypto/rand"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultSamples is the default number of avalanche samples per
// message size.
const DefaultSamples = 64

// Config defines the global configuration for the SHA-1 tools. Config
// must not be modified after being passed to any module. It is safe
// for concurrent use by multiple modules as they do not modify it.
type Config struct {
	Rand     io.Reader
	Samples  int
	LogLevel string
}

// GetRandom returns the source of entropy for the avalanche corpus.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetSamples returns the number of avalanche samples per message
// size.
func (config *Config) GetSamples() int {
	if config.Samples > 0 {
		return config.Samples
	}
	return DefaultSamples
}

// GetLogLevel returns the configured log level. Unset or invalid
// levels default to logrus.InfoLevel.
func (config *Config) GetLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
