// Package commonerrors defines typical errors which can happen.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented  = errors.New("not implemented")
	ErrNoLogger        = errors.New("missing logger")
	ErrUndefined       = errors.New("undefined")
	ErrEmpty           = errors.New("empty")
	ErrTimeout         = errors.New("timeout")
	ErrNotFound        = errors.New("not found")
	ErrUnsupported     = errors.New("unsupported")
	ErrUnavailable     = errors.New("unavailable")
	ErrUnknown         = errors.New("unknown")
	ErrInvalid         = errors.New("invalid")
	ErrConflict        = errors.New("conflict")
	ErrMarshalling     = errors.New("unserialisable")
	ErrCancelled       = errors.New("cancelled")
	ErrUnexpected      = errors.New("unexpected")
	ErrCondition       = errors.New("failed condition")
	ErrEOF             = errors.New("end of file")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for i := range err {
		e := err[i]
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for i := range err {
		e := err[i]
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether a `target` error corresponds to a specific error described by `description`
// It will check whether the error contains the string in its description. It is not case-sensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// New is similar to errors.New or fmt.Errorf but creates an error of type targetErr
func New(targetErr error, msg string) error {
	if targetErr == nil {
		return errors.New(msg)
	}
	if msg == "" {
		return targetErr
	}
	return fmt.Errorf("%w: %v", targetErr, msg)
}

// Newf is similar to New but allows to format the message.
func Newf(targetErr error, msgFormat string, args ...any) error {
	return New(targetErr, fmt.Sprintf(msgFormat, args...))
}

// WrapError wraps an error into a particular targetError. However, if the original error has to do with a contextual error (i.e. cancelled or timeout), the original error will be kept.
func WrapError(targetError, originalError error, msg string) error {
	if originalError == nil {
		return New(targetError, msg)
	}
	cleansedErr := ConvertContextError(originalError)
	if Any(cleansedErr, ErrCancelled, ErrTimeout) {
		targetError = cleansedErr
	}
	if msg == "" {
		return fmt.Errorf("%w%v %v", targetError, string(TypeReasonErrorSeparator), originalError.Error())
	}
	return fmt.Errorf("%w%v %v%v %v", targetError, string(TypeReasonErrorSeparator), msg, string(TypeReasonErrorSeparator), originalError.Error())
}

// WrapErrorf is similar to WrapError but allows formatting the message.
func WrapErrorf(targetError, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(msgFormat, args...))
}

// Ignore will return nil if the target error matches one of the errors to ignore
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// Join is similar to errors.Join but nil errors are discarded and a single error is returned unwrapped.
func Join(errs ...error) error {
	var nonNil []error
	for i := range errs {
		if errs[i] != nil {
			nonNil = append(nonNil, errs[i])
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return errors.Join(nonNil...)
	}
}

// ConvertContextError converts a context error into common errors.
func ConvertContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, context.Canceled):
		return ErrCancelled
	default:
		return err
	}
}

// DetermineContextError determines what the context error is if any.
func DetermineContextError(ctx context.Context) error {
	return ConvertContextError(ctx.Err())
}

// UndefinedParameter returns an undefined error with a message
func UndefinedParameter(msg string) error {
	return New(ErrUndefined, msg)
}

// UndefinedParameterf returns an undefined error with a formatted message
func UndefinedParameterf(msgFormat string, args ...any) error {
	return Newf(ErrUndefined, msgFormat, args...)
}

const TypeReasonErrorSeparator = ':'
