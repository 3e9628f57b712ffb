package store

import "errors"

// Sentinel errors returned by [SafeRepository] implementations to signal
// well-known outcomes. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrSafeNotFound is returned by FindSafe when no record is stored under
	// the requested id.
	ErrSafeNotFound = errors.New("safe was not found")

	// ErrSafeAlreadyExists is returned by InsertSafe when a record with the
	// same id has already been stored, typically by a concurrent creator.
	ErrSafeAlreadyExists = errors.New("safe already exists")

	// ErrUnknownBackend is returned by [NewStorages] for an unsupported
	// storage backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level operation errors. These are wrapped together with the driver
// error, so both can be matched with [errors.Is] / [errors.As].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails for
	// a reason other than a duplicate id.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrEncodingRecord / ErrDecodingRecord are returned by the Redis
	// backend when a record cannot be (de)serialized.
	ErrEncodingRecord = errors.New("failed to encode safe record")
	ErrDecodingRecord = errors.New("failed to decode safe record")

	// ErrRedisCommand is returned when a Redis command fails.
	ErrRedisCommand = errors.New("redis command failed")
)
