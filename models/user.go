package models

// User represents an account entity used for authentication and ownership
// scoping. Every Board and Note references exactly one User through its
// owner field; the BoardIDs and NoteIDs slices are denormalized caches of
// that relation and are never the source of truth.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the globally unique login name.
	Username string `json:"username"`

	// Email is the globally unique e-mail address. Sign-in accepts it in
	// place of the username.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a bcrypt hash, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// BoardIDs is the denormalized list of boards owned by the user.
	// Maintained alongside board creation/deletion; informational only.
	BoardIDs []int64 `json:"boards"`

	// NoteIDs is the denormalized list of notes owned by the user.
	NoteIDs []int64 `json:"notes"`

	// CreatedAt is the account creation time in Unix epoch seconds.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the last modification time in Unix epoch seconds.
	UpdatedAt int64 `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the reduced user representation embedded in sign-in
// responses. It carries only non-sensitive identity attributes.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public projects the user onto its PublicUser representation.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// Identity is the authenticated principal attached to the request context by
// the auth middleware after token verification and user lookup. Downstream
// handlers use Sub as the ownership filter for every query.
type Identity struct {
	// Sub is the user ID taken from the token's "sub" claim.
	Sub int64 `json:"sub"`

	// Username mirrors the "username" claim.
	Username string `json:"username"`

	// Email mirrors the "email" claim.
	Email string `json:"email"`
}
