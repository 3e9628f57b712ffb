package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-safe-keeper/internal/crypto"
	"github.com/MKhiriev/go-safe-keeper/internal/service"
	"github.com/MKhiriev/go-safe-keeper/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid json", fmt.Errorf("%w: eof", ErrInvalidJSON), http.StatusBadRequest},
		{"invalid argument", fmt.Errorf("%w: empty safe id", service.ErrInvalidArgument), http.StatusBadRequest},
		{"missing header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{"bad header", ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"not found", ErrRouteNotFound, http.StatusNotFound},
		{"storage", &service.SafeStorageError{SafeID: "a", Op: "find", Err: errors.New("down")}, http.StatusServiceUnavailable},
		{"decryption", fmt.Errorf(`field "a": %w`, crypto.ErrDecryption), http.StatusInternalServerError},
		{"unknown format", crypto.ErrUnknownFormat, http.StatusInternalServerError},
		{"encryption", crypto.ErrEncryption, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "client error keeps message",
			err:         fmt.Errorf("%w: malformed field path %q", service.ErrInvalidArgument, "a..b"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: `invalid argument: malformed field path "a..b"`,
		},
		{
			name:        "storage error replaced by status text",
			err:         &service.SafeStorageError{SafeID: "a", Op: "find", Err: errors.New("dial tcp 10.0.0.1:5432")},
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: http.StatusText(http.StatusServiceUnavailable),
		},
		{
			name:        "unclassified error replaced by status text",
			err:         errors.New("secret detail"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), "test", tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMessage, decodeBody[models.ErrorResponse](t, rec).Error)
		})
	}
}
