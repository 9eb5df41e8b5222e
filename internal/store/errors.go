package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrQRCodeNotFound is returned when no qr_codes row matches the
	// requested identifier, or when an UPDATE/DELETE affects zero rows.
	ErrQRCodeNotFound = errors.New("qr code was not found")

	// ErrQRCodeIDAlreadyExists is returned when an INSERT violates the
	// unique constraint on qr_code_id.
	ErrQRCodeIDAlreadyExists = errors.New("qr code id already exists")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver name other
	// than "pgx" or "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan qr code row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan qr code rows")

	// ErrArchivingImage is returned by [ImageArchive] implementations when
	// the object store rejects an upload or removal.
	ErrArchivingImage = errors.New("failed to archive qr code image")
)
