package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT service token with convenience accessors.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// The subject claim names the calling service. Tokens are minted by
// operators (see safectl token) and verified by the HTTP auth middleware.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Service is a cached copy of the "sub" claim.
	Service string `json:"-"`
}

// GetService extracts the calling service name from the "sub" claim.
// Returns an error if the claim is missing or empty.
func (t *Token) GetService() (string, error) {
	service, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting service from token: %w", err)
	}
	if service == "" {
		return "", fmt.Errorf("empty subject in token")
	}

	return service, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
