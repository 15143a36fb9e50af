package models

// Note is a text item owned by exactly one user and attached to exactly one
// board. The note's owner must equal the owner of the board it references;
// the invariant is enforced at creation by re-checking board ownership.
type Note struct {
	// ID is the internal unique identifier of the note.
	ID int64 `json:"id"`

	// Text is the note content.
	Text string `json:"text"`

	// Owner references the user the note belongs to.
	Owner int64 `json:"owner"`

	// BoardID references the board the note is attached to.
	BoardID int64 `json:"board"`

	// CreatedAt is the creation time in Unix epoch seconds.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the last modification time in Unix epoch seconds.
	UpdatedAt int64 `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteWithBoard is the populated note representation used in list responses.
// The Board field shadows the embedded BoardID under the "board" JSON key.
type NoteWithBoard struct {
	Note

	// Board holds the full board record the note is attached to.
	Board Board `json:"board"`
}

// NoteWithRelations is the fully populated note returned by the single-note
// read: both the board and the owning user (sans credentials) are embedded.
type NoteWithRelations struct {
	Note

	// Board holds the full board record the note is attached to.
	Board Board `json:"board"`

	// Owner holds the owning user record. PasswordHash is excluded from
	// serialization by the User model itself.
	Owner User `json:"owner"`
}
