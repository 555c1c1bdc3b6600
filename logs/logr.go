/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs provides constructors of logr loggers (https://github.com/go-logr/logr) over the common logging libraries.
package logs

import (
	"fmt"
	"io"
	"log"

	"github.com/bombsimon/logrusr/v4"
	"github.com/evanphx/hclogr"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/stdr"
	"github.com/go-logr/zapr"
	"github.com/go-logr/zerologr"
	"github.com/hashicorp/go-hclog"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// NewNoopLogger returns a logger discarding everything.
func NewNoopLogger() logr.Logger {
	return logr.Discard()
}

// NewStdOutLogr returns a logger to standard output.
// See https://github.com/go-logr/logr/blob/ff91da8dc418a9e36998931ed4ab10b71833a368/example_test.go#L27
func NewStdOutLogr() logr.Logger {
	return NewStdOutLogrWithVerbosity(0)
}

// NewStdOutLogrWithVerbosity returns a logger to standard output logging V-levels up to verbosity.
func NewStdOutLogrWithVerbosity(verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Printf("%s: %s\n", prefix, args)
		} else {
			fmt.Println(args)
		}
	}, funcr.Options{Verbosity: verbosity})
}

// NewZapLogger returns a logger backed by zap (https://github.com/uber-go/zap).
func NewZapLogger(logger *zap.Logger) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return zapr.NewLogger(logger)
}

// NewLogrusLogger returns a logger backed by logrus (https://github.com/sirupsen/logrus).
func NewLogrusLogger(logger logrus.FieldLogger, opts ...logrusr.Option) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return logrusr.New(logger, opts...)
}

// NewHclogLogger returns a logger backed by hclog (https://github.com/hashicorp/go-hclog).
func NewHclogLogger(logger hclog.Logger) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return hclogr.Wrap(logger)
}

// NewZerologLogger returns a JSON logger backed by zerolog (https://github.com/rs/zerolog).
func NewZerologLogger(logger *zerolog.Logger) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return zerologr.New(logger)
}

// NewStdLogger returns a logger backed by the standard library logger.
func NewStdLogger(logger *log.Logger) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return stdr.New(logger)
}

// NewJSONLogger returns a logger writing JSON lines to w.
func NewJSONLogger(w io.Writer) logr.Logger {
	if w == nil {
		return NewNoopLogger()
	}
	zl := zerolog.New(w).With().Timestamp().Logger()
	return NewZerologLogger(&zl)
}
