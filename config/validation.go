/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"reflect"
	"strings"
)

// ValidateEmbedded validates the struct fields of cfg which implement Validator.
// The first failure is returned, locating the faulty section.
func ValidateEmbedded(cfg Validator) error {
	r := reflect.Indirect(reflect.ValueOf(cfg))
	if r.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct || !f.CanAddr() || !r.Type().Field(i).IsExported() {
			continue
		}
		validator, ok := f.Addr().Interface().(Validator)
		if !ok {
			continue
		}
		if err := wrapFieldValidationError(r.Type().Field(i), validator.Validate()); err != nil {
			return err
		}
	}
	return nil
}

func wrapFieldValidationError(structField reflect.StructField, err error) error {
	if err == nil {
		return nil
	}
	var mapStructure *string
	if tag, hasTag := structField.Tag.Lookup("mapstructure"); hasTag {
		if name := processMapStructureString(tag); name != "" {
			mapStructure = &name
		}
	}
	return WrapFieldValidationError(structField.Name, mapStructure, err)
}

// processMapStructureString extracts the entry name from a mapstructure tag.
func processMapStructureString(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if name == "-" {
		return ""
	}
	return name
}
