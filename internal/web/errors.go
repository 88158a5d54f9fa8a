package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
)

// statusFor maps a pipeline error to the HTTP status of the response
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, &apperrors.ErrShowNotRendered{}), errors.Is(err, &apperrors.ErrNotFound{}):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// reportError sends server-side failures to Sentry when it is enabled.
// Client errors are expected and not reported.
func (s *Server) reportError(r *http.Request, err error, status int) {
	if err == nil || status < http.StatusInternalServerError || !s.opts.Sentry {
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	hub := sentry.GetHubFromContext(r.Context())
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.CaptureException(err)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}
