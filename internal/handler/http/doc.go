// Package http implements the REST transport of the streama API.
//
// It wires routes, request handlers and middleware. Cross-cutting concerns
// run in a fixed order before a handler sees the request: panic recovery,
// trace ids, access logging, CORS, rate limiting, authentication, role
// checks and request validation. Every failure is written as the JSON error
// envelope produced by writeError.
package http
