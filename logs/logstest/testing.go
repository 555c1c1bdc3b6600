// Package logstest provides loggers to use in tests.
package logstest

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/sirupsen/logrus"
	logrusTest "github.com/sirupsen/logrus/hooks/test"

	"github.com/underbar-go/underbar/logs"
)

// NewNullTestLogger returns a logger to nothing.
func NewNullTestLogger() logr.Logger {
	internalLogger, _ := logrusTest.NewNullLogger()
	return logs.NewLogrusLogger(internalLogger)
}

// NewRecordingTestLogger returns a logger which records entries in the returned hook, so that tests can assert on them.
func NewRecordingTestLogger() (logr.Logger, *logrusTest.Hook) {
	internalLogger, hook := logrusTest.NewNullLogger()
	internalLogger.SetLevel(logrus.TraceLevel)
	return logs.NewLogrusLogger(internalLogger), hook
}

// NewStdTestLogger returns a test logger to standard output.
func NewStdTestLogger() logr.Logger {
	return logs.NewStdOutLogr()
}

// NewTestLogger returns a logger writing to the test output, with every V-level enabled.
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.NewWithOptions(t, testr.Options{Verbosity: 10})
}
