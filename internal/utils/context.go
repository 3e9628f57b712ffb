// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP request and response JSON handling, HTTP client initialization,
// JWT service token generation and validation, and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ServiceCtxKey is the key under which the HTTP auth middleware stores the
// name of the authenticated calling service.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ServiceCtxKey, "billing")
var ServiceCtxKey = contextKey("service")

// GetServiceFromContext retrieves the calling service name from the context.
//
// Returns ok == false if the value is missing, empty or not a string.
func GetServiceFromContext(ctx context.Context) (string, bool) {
	service, ok := ctx.Value(ServiceCtxKey).(string)
	return service, ok && service != ""
}
