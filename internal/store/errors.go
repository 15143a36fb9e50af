package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when creating a user fails
	// because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when creating a user fails because
	// the e-mail address is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBoardNameAlreadyExists is returned when creating a board fails
	// because the owner already has a board with the same name.
	ErrBoardNameAlreadyExists = errors.New("board name already exists for this owner")

	// ErrBoardNotFound is returned when a query targets a board (identified
	// by id and owner) that does not exist in the database.
	ErrBoardNotFound = errors.New("board was not found")

	// ErrNoteNotFound is returned when a query targets a note (identified
	// by id and owner) that does not exist in the database.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoBoardUpdated is returned when an UPDATE scoped by {id, owner}
	// affects zero rows: the board does not exist or belongs to someone
	// else. The two cases are deliberately indistinguishable.
	ErrNoBoardUpdated = errors.New("no board was updated")

	// ErrNoBoardDeleted is the zero-rows counterpart for board deletion.
	ErrNoBoardDeleted = errors.New("no board was deleted")

	// ErrNoNoteUpdated is returned when a note UPDATE scoped by {id, owner}
	// affects zero rows.
	ErrNoNoteUpdated = errors.New("no note was updated")

	// ErrNoNoteDeleted is the zero-rows counterpart for note deletion.
	ErrNoNoteDeleted = errors.New("no note was deleted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
