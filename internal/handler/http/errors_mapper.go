package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-safe-keeper/internal/crypto"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/internal/service"
	"github.com/MKhiriev/go-safe-keeper/internal/utils"
	"github.com/MKhiriev/go-safe-keeper/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidArgument, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{ErrRouteNotFound, http.StatusNotFound},

	{service.ErrSafeStorage, http.StatusServiceUnavailable},

	{crypto.ErrEncryption, http.StatusInternalServerError},
	{crypto.ErrDecryption, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Messages of
// storage and unclassified failures are replaced by the status text so that
// driver details do not leak to callers.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	message := err.Error()
	if status == http.StatusServiceUnavailable || !isClassified(err) {
		message = http.StatusText(status)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

func isClassified(err error) bool {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return true
		}
	}
	return false
}
