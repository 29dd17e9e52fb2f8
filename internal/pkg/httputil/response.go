package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/ignite/campaign-chat/internal/pkg/logger"
)

// maxBodyBytes caps request bodies read by Decode and DecodeOptional.
const maxBodyBytes = 1 << 20

// ErrorResponse is the error body. The chat client reads detail.
type ErrorResponse struct {
	Detail  string `json:"detail"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// JSON encodes data as the response body with the given status.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing left to tell the client.
		logger.Error("encode response", "error", err)
	}
}

// Error writes an ErrorResponse carrying message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Detail: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// Decode parses the request body into dst. On failure it writes a 400 and
// reports false; the caller should return.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decode(w, r, dst, false)
}

// DecodeOptional is Decode for bodies that may be absent. A missing or
// empty body leaves dst untouched.
func DecodeOptional(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}
	return decode(w, r, dst, true)
}

func decode(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	switch {
	case err == nil:
		return true
	case allowEmpty && errors.Is(err, io.EOF):
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		Error(w, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}
	BadRequest(w, "invalid JSON: "+err.Error())
	return false
}
