package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-safe-keeper/internal/config"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/internal/utils"
	"github.com/MKhiriev/go-safe-keeper/models"
)

// tokenService is the concrete implementation of [TokenService].
// Service tokens are HS256 JWTs whose subject names the calling service.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the token settings of
// cfg. The returned service is safe for concurrent use.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed token for serviceName.
//
// Returns [ErrInvalidArgument] for an empty service name and a wrapped
// [ErrTokenCreationFailed] if signing is impossible (e.g. no sign key).
func (s *tokenService) CreateToken(ctx context.Context, serviceName string) (models.Token, error) {
	if serviceName == "" {
		return models.Token{}, fmt.Errorf("%w: service name is required", ErrInvalidArgument)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, serviceName, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.CreateToken").Str("service", serviceName).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw token. Any validation failure (expired, wrong
// issuer, bad signature, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid].
func (s *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if s.tokenSignKey == "" {
		return models.Token{}, errors.Join(ErrTokenIsExpiredOrInvalid, errors.New("token sign key is not configured"))
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
