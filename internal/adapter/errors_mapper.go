package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// mapProviderError converts an upstream status code into a [*ProviderError].
// It returns nil for every 2xx status. provider is the display name used in
// messages, detail is the human-readable upstream message.
func mapProviderError(provider, endpoint string, status int, detail string) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	if detail == "" {
		detail = http.StatusText(status)
	}

	pe := &ProviderError{Provider: provider, StatusCode: status}

	switch {
	case status == http.StatusNotFound:
		pe.Kind = ErrNotFound
		pe.Message = fmt.Sprintf("%s resource not found: %s", provider, endpoint)
	case status == http.StatusUnauthorized:
		pe.Kind = ErrUnauthorized
		pe.Message = fmt.Sprintf("Invalid %s API key or unauthorized access", provider)
	case status == http.StatusBadRequest:
		pe.Kind = ErrBadRequest
		pe.Message = fmt.Sprintf("Invalid request to %s API: %s", provider, detail)
	case status == http.StatusTooManyRequests:
		pe.Kind = ErrServiceUnavailable
		pe.Message = fmt.Sprintf("%s API rate limit exceeded", provider)
	case status >= http.StatusInternalServerError:
		pe.Kind = ErrServiceUnavailable
		pe.Message = fmt.Sprintf("%s service is currently unavailable", provider)
	default:
		pe.Kind = ErrUpstream
		pe.Message = fmt.Sprintf("%s API error: %s", provider, detail)
	}

	return pe
}

// transportError reports a request that never produced a response
// (connection failure, timeout, cancelled context).
func transportError(provider string, err error) error {
	return &ProviderError{
		Provider: provider,
		Kind:     ErrServiceUnavailable,
		Message:  fmt.Sprintf("%s service is currently unavailable", provider),
		cause:    err,
	}
}

// decodeError reports a successful response whose body is unusable.
func decodeError(provider string, err error) error {
	return &ProviderError{
		Provider:   provider,
		Kind:       ErrUpstream,
		Message:    fmt.Sprintf("%s API error: malformed response", provider),
		StatusCode: http.StatusOK,
		cause:      err,
	}
}

// upstreamDetail extracts the message field of a JSON error body, falling
// back to the trimmed body text.
func upstreamDetail(body []byte, field string) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload[field].(string); ok && msg != "" {
			return msg
		}
	}

	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}
