package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/underbar-go/underbar/commonerrors"
	"github.com/underbar-go/underbar/field"
)

func init() {
	// Validation errors are reported using the names entries are loaded with.
	validation.ErrorTag = "mapstructure"
}

// IValidationError defines a configuration validation error locating the faulty entry.
type IValidationError interface {
	error
	fmt.Stringer
	// GetMapStructurePath returns the environment variable corresponding to the faulty entry.
	GetMapStructurePath() string
	// GetTreePath returns the path to the faulty field in the configuration structure.
	GetTreePath() string
	GetReason() string
	Unwrap() error
	RecordField(fieldName string, mapStructureFieldName *string)
	RecordPrefix(mapStructurePrefix string)
}

// WrapFieldValidationError creates an error resulting from the validation of a field in a structure.
func WrapFieldValidationError(fieldName string, mapStructure *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	vErr.RecordField(fieldName, mapStructure)
	return vErr
}

// WrapValidationError creates an error resulting from the validation of a structure loaded with prefix.
func WrapValidationError(prefix *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	if prefix != nil && strings.TrimSpace(*prefix) != "" {
		vErr.RecordPrefix(*prefix)
	}
	return vErr
}

type validationError struct {
	tree               []string
	mapStructureTree   []string
	mapStructurePrefix *string
	reason             string
}

func (v *validationError) RecordField(fieldName string, mapStructureFieldName *string) {
	v.tree = slices.Insert(v.tree, 0, strings.TrimSpace(fieldName))
	if mapStructureFieldName != nil && strings.TrimSpace(*mapStructureFieldName) != "" {
		v.mapStructureTree = slices.Insert(v.mapStructureTree, 0, strings.ToUpper(strings.TrimSpace(*mapStructureFieldName)))
	}
}

func (v *validationError) RecordPrefix(mapStructurePrefix string) {
	v.mapStructurePrefix = field.ToOptional(mapStructurePrefix)
}

func (v *validationError) GetMapStructurePath() string {
	if len(v.mapStructureTree) == 0 {
		return ""
	}
	path := strings.ReplaceAll(strings.Join(v.mapStructureTree, EnvVarSeparator), "-", EnvVarSeparator)
	if v.mapStructurePrefix != nil {
		path = strings.ToUpper(strings.TrimSpace(*v.mapStructurePrefix)) + EnvVarSeparator + path
	}
	return path
}

func (v *validationError) GetTreePath() string {
	return strings.Join(v.tree, "->")
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *validationError) Error() string {
	var b strings.Builder
	b.WriteString("structure failed validation")
	if tree := v.GetTreePath(); tree != "" {
		_, _ = fmt.Fprintf(&b, " (%v)", tree)
	}
	if path := v.GetMapStructurePath(); path != "" {
		_, _ = fmt.Fprintf(&b, " [%v]", path)
	}
	if v.reason != "" {
		_, _ = fmt.Fprintf(&b, " %v", v.reason)
	}
	return commonerrors.New(v.Unwrap(), b.String()).Error()
}

func (v *validationError) String() string {
	return v.Error()
}

func newValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var oes validation.Errors
	if errors.As(err, &oes) {
		return newValidationErrorFromOzzoValidationErrors(oes)
	}
	var oe validation.Error
	if errors.As(err, &oe) {
		return &validationError{reason: oe.Error()}
	}
	return &validationError{reason: err.Error()}
}

// newValidationErrorFromOzzoValidationErrors only reports the first faulty entry, in alphabetical order.
func newValidationErrorFromOzzoValidationErrors(oes validation.Errors) *validationError {
	params := slices.Sorted(maps.Keys(oes))
	if len(params) == 0 {
		return &validationError{reason: oes.Error()}
	}
	param := params[0]
	vErr := newValidationError(oes[param])
	if vErr == nil {
		vErr = &validationError{reason: oes.Error()}
	}
	vErr.RecordField(param, field.ToOptional(param))
	return vErr
}
