// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request DTOs before they reach the services.
//
// Rules are declared with `validate` struct tags on the models and enforced
// by go-playground/validator. Failures are reported as [*ValidationError]
// listing every rejected field under its JSON name.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
