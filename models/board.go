package models

// Board is a named collection of notes owned by exactly one user.
// The (Owner, Name) pair is unique; the constraint is enforced both by an
// owner-scoped existence check at creation time and by a compound unique
// index at the storage layer.
type Board struct {
	// ID is the internal unique identifier of the board.
	ID int64 `json:"id"`

	// Name is the board title, unique per owner.
	Name string `json:"name"`

	// Owner references the user the board belongs to. All reads and
	// mutations filter on this field together with ID.
	Owner int64 `json:"owner"`

	// NoteIDs is the denormalized list of notes attached to the board.
	// Maintained alongside note creation/deletion; informational only.
	NoteIDs []int64 `json:"notes"`

	// CreatedAt is the creation time in Unix epoch seconds.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the last modification time in Unix epoch seconds.
	UpdatedAt int64 `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Board model.
func (b Board) TableName() string {
	return "boards"
}

// BoardWithNotes is the populated board representation returned by the
// single-board read. The Notes field shadows the embedded NoteIDs under the
// "notes" JSON key, replacing the id list with full note objects.
type BoardWithNotes struct {
	Board

	// Notes holds the full note records attached to the board.
	Notes []Note `json:"notes"`
}
