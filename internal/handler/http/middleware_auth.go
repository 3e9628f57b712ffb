package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces service-token authentication.
//
// It extracts the bearer token from the "Authorization" header, validates
// it via [service.TokenService.ParseToken] and, on success, stores the
// calling service name in the request context under [utils.ServiceCtxKey]
// and on the request logger before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// absent ([ErrEmptyAuthorizationHeader]), malformed
// ([ErrInvalidAuthorizationHeader]) or carries a token that is expired or
// invalid ([service.ErrTokenIsExpiredOrInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "*Handler.auth", ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, "*Handler.auth", ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("service", token.Service)
		})
		ctx = l.WithContext(ctx)
		ctx = context.WithValue(ctx, utils.ServiceCtxKey, token.Service)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
