package api

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/ignite/campaign-chat/internal/pkg/logger"
)

// Public messages for server-side failures. The underlying error is only
// ever logged.
const (
	msgTimedOut    = "Request timed out"
	msgUnavailable = "Service temporarily unavailable"
	msgInternal    = "An internal error occurred"
)

// respondSafeError logs internalErr in full and answers with a message that
// reveals nothing about it.
func respondSafeError(w http.ResponseWriter, code int, internalErr error) {
	msg := safeErrorMessage(code, internalErr)
	if internalErr != nil {
		logger.Error("request failed", "status", code, "public_message", msg, "error", internalErr)
	}
	respondError(w, code, msg)
}

// safeErrorMessage picks the client-facing text for an error. Client errors
// describe the caller's own input and pass through unchanged.
func safeErrorMessage(code int, internalErr error) string {
	if code < http.StatusInternalServerError {
		if internalErr != nil {
			return internalErr.Error()
		}
		return "Bad request"
	}

	var netErr net.Error
	switch {
	case internalErr == nil:
		return msgInternal
	case errors.Is(internalErr, context.Canceled), errors.Is(internalErr, context.DeadlineExceeded):
		return msgTimedOut
	case errors.As(internalErr, &netErr) && netErr.Timeout():
		return msgTimedOut
	case errors.As(internalErr, &netErr):
		return msgUnavailable
	default:
		return msgInternal
	}
}
