package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/vyper/fermybot/internal/services"
)

var (
	// ErrMissingBody means the route needs a request body and none was sent
	ErrMissingBody = errors.New("missing body")
	// ErrEncoding means a reply could not be serialized
	ErrEncoding = errors.New("encoding")
)

// statusForError maps request-processing failures to a response status
func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrMissingBody), errors.Is(err, services.ErrPayloadDecode):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and answers with the matching status
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := statusForError(err)
	logger.Error("Request failed", zap.Int("status", status), zap.Error(err))
	http.Error(w, http.StatusText(status), status)
}
