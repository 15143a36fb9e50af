package store

import (
	"context"

	"github.com/avelasco/noteboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for account records.
//
// Find methods return [ErrNoUserWasFound] for empty result sets; CreateUser
// maps unique-index violations to [ErrUsernameAlreadyExists] or
// [ErrEmailAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByLoginOrEmail resolves the sign-in identifier, which may be
	// either a username or an e-mail address.
	FindUserByLoginOrEmail(ctx context.Context, login string) (models.User, error)
	// FindUserByIDAndEmail is the auth-middleware lookup: both the token's
	// subject and its e-mail claim must match the stored record.
	FindUserByIDAndEmail(ctx context.Context, id int64, email string) (models.User, error)
}

// BoardRepository is the data-access contract for boards. Every read and
// mutation is scoped by the owner id; an id that exists but belongs to a
// different owner behaves exactly like a missing record.
type BoardRepository interface {
	ListBoardsByOwner(ctx context.Context, ownerID int64) ([]models.Board, error)
	FindBoardByIDAndOwner(ctx context.Context, boardID, ownerID int64) (models.Board, error)
	FindBoardByOwnerAndName(ctx context.Context, ownerID int64, name string) (models.Board, error)
	// CreateBoard inserts the board and appends its id to the owning user's
	// board list in the same transaction.
	CreateBoard(ctx context.Context, board models.Board) (models.Board, error)
	// UpdateBoardName renames the board matched by {boardID, ownerID} and
	// returns [ErrNoBoardUpdated] when zero rows were affected.
	UpdateBoardName(ctx context.Context, boardID, ownerID int64, name string, updatedAt int64) error
	// DeleteBoard removes the board matched by {boardID, ownerID}, cascades
	// deletion of its notes, and refreshes the owner's denormalized lists,
	// all in one transaction. Returns [ErrNoBoardDeleted] when the board
	// does not exist or is not owned by ownerID.
	DeleteBoard(ctx context.Context, boardID, ownerID int64) error
}

// NoteRepository is the data-access contract for notes, scoped by owner the
// same way as [BoardRepository].
type NoteRepository interface {
	ListNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error)
	ListNotesByBoard(ctx context.Context, boardID, ownerID int64) ([]models.Note, error)
	FindNoteByIDAndOwner(ctx context.Context, noteID, ownerID int64) (models.Note, error)
	// CreateNote inserts the note and appends its id to both the board's
	// and the owning user's note lists in the same transaction.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	// UpdateNoteText edits the note matched by {noteID, ownerID} and
	// returns [ErrNoNoteUpdated] when zero rows were affected.
	UpdateNoteText(ctx context.Context, noteID, ownerID int64, text string, updatedAt int64) error
	// DeleteNote removes the note matched by {noteID, ownerID} and pulls
	// its id from the board's and user's note lists in one transaction.
	// Returns [ErrNoNoteDeleted] when zero rows were affected.
	DeleteNote(ctx context.Context, noteID, ownerID int64) error
}
