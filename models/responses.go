package models

import "time"

// Envelope status values.
const (
	StatusFail  = "fail"
	StatusError = "error"
)

// ErrorResponse is the uniform JSON body of every failed request.
// Status is "fail" for 4xx codes and "error" otherwise. Stack is filled
// only outside production.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// MessageResponse is returned by endpoints without a resource payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of the liveness probe.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}
