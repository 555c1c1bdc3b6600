/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package field provides utilities to convert values to and from optional (pointer) fields.
package field

import "reflect"

// ToOptional returns a pointer to a copy of the value.
func ToOptional[T any](v T) *T {
	return &v
}

// ToOptionalOrNilIfEmpty is similar to ToOptional but returns nil when the value is its type's zero value.
func ToOptionalOrNilIfEmpty[T any](v T) *T {
	if reflect.ValueOf(&v).Elem().IsZero() {
		return nil
	}
	return ToOptional(v)
}

// Optional returns the value of an optional field or else returns defaultValue.
func Optional[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// OptionalInt returns the value of an optional int field or else returns defaultValue.
func OptionalInt(ptr *int, defaultValue int) int {
	return Optional(ptr, defaultValue)
}

// OptionalString returns the value of an optional string field or else returns defaultValue.
func OptionalString(ptr *string, defaultValue string) string {
	return Optional(ptr, defaultValue)
}

// OptionalBool returns the value of an optional bool field or else returns defaultValue.
func OptionalBool(ptr *bool, defaultValue bool) bool {
	return Optional(ptr, defaultValue)
}
