// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads against the business rules of
// the vip-motors API before they reach the service layer.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationErrors: every rule violation found in one value, keyed by the
//     JSON path of the offending field.
//
// Usage patterns:
//  1. Wrap a service with a validating decorator holding a Validator.
//  2. Call Validate with context, value, and optional field names.
//  3. Report a [ValidationErrors] result to the client as field details.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
