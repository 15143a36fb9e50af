package store

import (
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
)

// psql builds all SELECT queries with PostgreSQL-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Column lists shared by the squirrel SELECT builders. The denormalized
// BIGINT[] id-list columns are serialized to JSON in-database so they can be
// scanned through database/sql without driver-specific array support.
var (
	userColumns = []string{
		"id", "username", "email", "password_hash",
		"array_to_json(board_ids)", "array_to_json(note_ids)",
		"created_at", "updated_at",
	}

	boardColumns = []string{
		"id", "name", "owner", "array_to_json(note_ids)",
		"created_at", "updated_at",
	}

	noteColumns = []string{
		"id", "text", "owner", "board", "created_at", "updated_at",
	}
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id;`

	createBoard = `INSERT INTO boards (name, owner, created_at, updated_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`

	appendBoardToUser = `UPDATE users
    SET board_ids = array_append(board_ids, $1)
    WHERE id = $2;`

	removeBoardFromUser = `UPDATE users
    SET board_ids = array_remove(board_ids, $1)
    WHERE id = $2;`

	updateBoardName = `UPDATE boards
    SET name = $1, updated_at = $2
    WHERE id = $3 AND owner = $4;`

	deleteBoardNotes = `DELETE FROM notes
    WHERE board = $1 AND owner = $2;`

	deleteBoard = `DELETE FROM boards
    WHERE id = $1 AND owner = $2;`

	// cascade aftermath: the user's note cache is recomputed from the
	// authoritative notes table instead of pulled id by id
	refreshUserNoteList = `UPDATE users
    SET note_ids = ARRAY(SELECT id FROM notes WHERE owner = $1)
    WHERE id = $1;`

	createNote = `INSERT INTO notes (text, owner, board, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id;`

	appendNoteToBoard = `UPDATE boards
    SET note_ids = array_append(note_ids, $1)
    WHERE id = $2;`

	appendNoteToUser = `UPDATE users
    SET note_ids = array_append(note_ids, $1)
    WHERE id = $2;`

	updateNoteText = `UPDATE notes
    SET text = $1, updated_at = $2
    WHERE id = $3 AND owner = $4;`

	deleteNote = `DELETE FROM notes
    WHERE id = $1 AND owner = $2
    RETURNING board;`

	removeNoteFromBoard = `UPDATE boards
    SET note_ids = array_remove(note_ids, $1)
    WHERE id = $2;`

	removeNoteFromUser = `UPDATE users
    SET note_ids = array_remove(note_ids, $1)
    WHERE id = $2;`
)

// scanIDList decodes an array_to_json(...) column value into an id slice.
// A NULL column or empty input yields an empty, non-nil slice so that JSON
// responses always render "[]" rather than null id lists.
func scanIDList(raw []byte) ([]int64, error) {
	if len(raw) == 0 {
		return []int64{}, nil
	}

	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}

	return ids, nil
}
