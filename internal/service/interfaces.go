package service

import (
	"context"

	"github.com/avelasco/noteboard/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	// SignUp creates a new account. The password is bcrypt-hashed before
	// persistence; the plain text is never stored or logged.
	SignUp(ctx context.Context, username, email, password string) (models.User, error)
	// SignIn authenticates by username or e-mail. Unknown user and wrong
	// password both yield [ErrWrongCredentials].
	SignIn(ctx context.Context, login, password string) (models.User, error)
	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken validates a raw JWT string and decodes its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate resolves a parsed token to its stored account. Both the
	// subject and the e-mail claim must match.
	Authenticate(ctx context.Context, token models.Token) (models.User, error)
}

// BoardService handles owner-scoped board operations.
type BoardService interface {
	ListBoards(ctx context.Context, ownerID int64) ([]models.Board, error)
	// GetBoard returns the board with its notes attached in place of the
	// id list.
	GetBoard(ctx context.Context, boardID, ownerID int64) (models.BoardWithNotes, error)
	AddBoard(ctx context.Context, ownerID int64, name string) (models.Board, error)
	// EditBoard renames the board and returns the refreshed record.
	EditBoard(ctx context.Context, boardID, ownerID int64, name string) (models.Board, error)
	DeleteBoard(ctx context.Context, boardID, ownerID int64) error
}

// NoteService handles owner-scoped note operations.
type NoteService interface {
	// ListNotes returns the owner's notes with their boards attached.
	ListNotes(ctx context.Context, ownerID int64) ([]models.NoteWithBoard, error)
	// GetNote returns the note with its board and owner attached.
	GetNote(ctx context.Context, noteID, ownerID int64) (models.NoteWithRelations, error)
	// AddNote pins a new note to a board. The board must belong to the
	// requester; a foreign or absent board yields [ErrBoardAccessDenied].
	AddNote(ctx context.Context, ownerID, boardID int64, text string) (models.Note, error)
	// EditNote replaces the note text and returns the refreshed record.
	EditNote(ctx context.Context, noteID, ownerID int64, text string) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, ownerID int64) error
}
