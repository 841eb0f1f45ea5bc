package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSnapshotNotFound is returned when no local snapshot exists for the
	// requested application, or when the persisted snapshot could not be
	// decoded. A corrupt snapshot is deliberately indistinguishable from a
	// missing one: both fall back to the remote answer record.
	ErrSnapshotNotFound = errors.New("local snapshot not found")

	// ErrApplicationNotFound is returned when a query targets an application
	// that has no record in the answer store.
	ErrApplicationNotFound = errors.New("application was not found")

	// ErrApplicationSubmitted is returned when a write targets an application
	// that has already been finally submitted and no longer accepts answers.
	ErrApplicationSubmitted = errors.New("application already submitted")

	// ErrAnswersNotSaved is returned when a write completes without error but
	// the number of affected rows is zero, indicating that nothing was
	// actually persisted.
	ErrAnswersNotSaved = errors.New("answers were not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects or fails an
	// otherwise well-formed query.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned into
	// the destination model.
	ErrScanningRow = errors.New("error scanning row")
)
