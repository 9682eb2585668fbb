package adapter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapProviderError_SuccessIsNil(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		assert.NoError(t, mapProviderError("TMDB", "/x", status, ""))
	}
}

func TestMapProviderError_EmptyDetailUsesStatusText(t *testing.T) {
	err := mapProviderError("Trakt", "/x", http.StatusBadRequest, "")

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "Invalid request to Trakt API: Bad Request", pe.Message)
}

func TestMapProviderError_ServerErrors(t *testing.T) {
	for _, status := range []int{500, 502, 503, 504} {
		err := mapProviderError("TMDB", "/x", status, "boom")
		assert.ErrorIs(t, err, ErrServiceUnavailable)
		assert.Equal(t, "TMDB service is currently unavailable", err.Error())
	}
}

func TestTransportError_KeepsCause(t *testing.T) {
	err := transportError("TMDB", context.DeadlineExceeded)

	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "TMDB service is currently unavailable", err.Error())
}

func TestUpstreamDetail(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		want  string
	}{
		{"json field", `{"status_message":"nope"}`, "status_message", "nope"},
		{"other field", `{"error":"bad"}`, "error", "bad"},
		{"missing field falls back to body", `{"x":1}`, "error", `{"x":1}`},
		{"plain text", "  gateway exploded \n", "error", "gateway exploded"},
		{"empty", "", "error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, upstreamDetail([]byte(tt.body), tt.field))
		})
	}
}

func TestUpstreamDetail_Truncates(t *testing.T) {
	long := strings.Repeat("a", 500)
	assert.Len(t, upstreamDetail([]byte(long), "error"), 200)
}
