package store

import "errors"

// Sentinel errors returned by [VaultCache] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCacheNotFound is returned by Read when no vault has been cached.
	ErrCacheNotFound = errors.New("no cached vault")

	// ErrCacheCorrupted is returned by Read when the stored envelope is
	// truncated, has an unknown version or misses a required field.
	ErrCacheCorrupted = errors.New("cached vault is corrupted")
)

// Low-level database operation errors. These are wrapped by the sqlite cache
// when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning the envelope column fails.
	ErrScanningRow = errors.New("failed to scan vault cache row")
)
