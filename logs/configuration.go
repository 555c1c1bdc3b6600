/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/underbar-go/underbar/commonerrors"
)

const (
	BackendNoop   = "noop"
	BackendStdOut = "stdout"
	BackendStd    = "std"
	BackendZap    = "zap"
	BackendLogrus = "logrus"
	BackendHclog  = "hclog"
	BackendJSON   = "json"
)

// Backends lists the supported logging backends.
var Backends = []string{BackendNoop, BackendStdOut, BackendStd, BackendZap, BackendLogrus, BackendHclog, BackendJSON}

// LoggingConfiguration selects a logging backend and how verbose it is.
type LoggingConfiguration struct {
	Backend   string `mapstructure:"backend"`
	Verbosity int    `mapstructure:"verbosity"`
	Name      string `mapstructure:"name"`
}

// DefaultLoggingConfiguration returns a configuration logging to standard output.
func DefaultLoggingConfiguration() *LoggingConfiguration {
	return &LoggingConfiguration{
		Backend: BackendStdOut,
		Name:    "underbar",
	}
}

func (cfg *LoggingConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Backend, validation.Required, validation.In(toAny(Backends)...)),
		validation.Field(&cfg.Verbosity, validation.Min(0)),
	)
}

func toAny(values []string) []any {
	result := make([]any, 0, len(values))
	for i := range values {
		result = append(result, values[i])
	}
	return result
}

// NewLogger creates the logger described by cfg.
func NewLogger(cfg *LoggingConfiguration) (logger logr.Logger, err error) {
	if cfg == nil {
		err = commonerrors.UndefinedParameter("missing logging configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid logging configuration")
		return
	}
	switch cfg.Backend {
	case BackendNoop:
		logger = NewNoopLogger()
	case BackendStdOut:
		logger = NewStdOutLogrWithVerbosity(cfg.Verbosity)
	case BackendStd:
		stdr.SetVerbosity(cfg.Verbosity)
		logger = NewStdLogger(log.New(os.Stderr, "", log.LstdFlags))
	case BackendZap:
		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-cfg.Verbosity))
		var zl *zap.Logger
		zl, err = zapCfg.Build()
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create zap logger")
			return
		}
		logger = NewZapLogger(zl)
	case BackendLogrus:
		ll := logrus.New()
		ll.SetLevel(logrus.Level(min(int(logrus.InfoLevel)+cfg.Verbosity, int(logrus.TraceLevel))))
		logger = NewLogrusLogger(ll)
	case BackendHclog:
		level := hclog.Info
		if cfg.Verbosity == 1 {
			level = hclog.Debug
		} else if cfg.Verbosity > 1 {
			level = hclog.Trace
		}
		logger = NewHclogLogger(hclog.New(&hclog.LoggerOptions{Name: cfg.Name, Level: level}))
	case BackendJSON:
		zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
		if cfg.Verbosity > 0 {
			zl = zl.Level(zerolog.TraceLevel)
		} else {
			zl = zl.Level(zerolog.InfoLevel)
		}
		logger = NewZerologLogger(&zl)
	}
	if cfg.Name != "" && cfg.Backend != BackendHclog {
		logger = logger.WithName(cfg.Name)
	}
	return
}
