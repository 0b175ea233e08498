// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it leaves the machine.
//
// A Validator checks a value field by field, in the order the fields are
// given, and stops at the first rule that fails. Callers may pass field
// names to check only a subset of the rules.
package validators

import "context"

// Validator validates an input value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
