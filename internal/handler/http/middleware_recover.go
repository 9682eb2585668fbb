package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

// withRecover turns a panicking handler into a 500 envelope. Outside
// production the envelope carries the goroutine stack.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			stack := debug.Stack()
			h.logger.Error().
				Str("func", "*Handler.withRecover").
				Str("uri", r.RequestURI).
				Interface("panic", rec).
				Bytes("stack", stack).
				Msg("handler panicked")

			h.writeErrorWithTrace(w, r, fmt.Errorf("%w: %v", ErrPanic, rec), string(stack))
		}()

		next.ServeHTTP(w, r)
	})
}
