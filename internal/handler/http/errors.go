// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the HTTP layer itself. Their text is the public
// message of the error envelope.
var (
	// ErrMissingToken is returned by the auth middleware when the request
	// carries neither the session cookie nor an "Authorization" header.
	ErrMissingToken = errors.New("authentication required")

	// ErrInsufficientRole is returned by the role gate for an authenticated
	// caller whose role is not allowed on the route.
	ErrInsufficientRole = errors.New("forbidden resource")

	ErrTooManyRequests = errors.New("too many requests")

	// ErrInvalidJSON wraps request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	ErrRouteNotFound = errors.New("route not found")

	// ErrPanic wraps a value recovered from a panicking handler.
	ErrPanic = errors.New("panic recovered")
)
