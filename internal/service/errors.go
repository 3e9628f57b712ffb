package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a caller passes an empty safe id or
	// a malformed field path.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSafeStorage is matched by every [*SafeStorageError].
	ErrSafeStorage = errors.New("safe storage error")

	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// SafeStorageError reports a store failure while resolving a safe. It never
// describes a duplicate-key conflict: those are resolved by re-fetching.
type SafeStorageError struct {
	// SafeID is the safe being resolved.
	SafeID string
	// Op is the store step that failed: "find", "insert" or "refetch".
	Op string
	// Err is the underlying store error.
	Err error
	// Retryable is true when the cause looks transient. Nothing in this
	// package retries; the flag is for callers.
	Retryable bool
}

func (e *SafeStorageError) Error() string {
	return fmt.Sprintf("safe storage: %s safe %q: %v", e.Op, e.SafeID, e.Err)
}

func (e *SafeStorageError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSafeStorage) hold for every SafeStorageError.
func (e *SafeStorageError) Is(target error) bool {
	return target == ErrSafeStorage
}
