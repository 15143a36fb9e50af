package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/models"
	sq "github.com/Masterminds/squirrel"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// ListNotesByOwner returns every note owned by ownerID, oldest first.
func (r *noteRepository) ListNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error) {
	return r.listNotes(ctx, "*noteRepository.ListNotesByOwner", sq.Eq{"owner": ownerID})
}

// ListNotesByBoard returns the owner's notes pinned to the given board.
func (r *noteRepository) ListNotesByBoard(ctx context.Context, boardID, ownerID int64) ([]models.Note, error) {
	return r.listNotes(ctx, "*noteRepository.ListNotesByBoard",
		sq.Eq{"board": boardID, "owner": ownerID})
}

// FindNoteByIDAndOwner retrieves a single note scoped by its owner. Returns
// [ErrNoteNotFound] when no matching row exists.
func (r *noteRepository) FindNoteByIDAndOwner(ctx context.Context, noteID, ownerID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"id": noteID, "owner": ownerID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNoteByIDAndOwner").Msg("error building note lookup query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&note.ID, &note.Text, &note.Owner, &note.BoardID,
		&note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.FindNoteByIDAndOwner").
			Bool("retryable", r.db.retryable(err)).
			Msg("error scanning note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// CreateNote inserts the note and appends its id to the board's and the
// owner's denormalized note lists in one transaction.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error beginning transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createNote,
		note.Text, note.Owner, note.BoardID, note.CreatedAt, note.UpdatedAt)
	if err := row.Scan(&note.ID); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Bool("retryable", r.db.retryable(err)).
			Msg("error creating note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if _, err := tx.ExecContext(ctx, appendNoteToBoard, note.ID, note.BoardID); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Bool("retryable", r.db.retryable(err)).
			Msg("error appending note to board's note list")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, appendNoteToUser, note.ID, note.Owner); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Bool("retryable", r.db.retryable(err)).
			Msg("error appending note to user's note list")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error committing transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return note, nil
}

// UpdateNoteText edits the note matched by {noteID, ownerID}. Returns
// [ErrNoNoteUpdated] when zero rows were affected.
func (r *noteRepository) UpdateNoteText(ctx context.Context, noteID, ownerID int64, text string, updatedAt int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateNoteText, text, updatedAt, noteID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.UpdateNoteText").
			Bool("retryable", r.db.retryable(err)).
			Msg("error updating note text")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoNoteUpdated
	}

	return nil
}

// DeleteNote removes the note matched by {noteID, ownerID} and pulls its id
// from the board's and the owner's note lists in one transaction. Returns
// [ErrNoNoteDeleted] when the note does not exist or is not owned by
// ownerID.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID, ownerID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var boardID int64
	row := tx.QueryRowContext(ctx, deleteNote, noteID, ownerID)
	err = row.Scan(&boardID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoNoteDeleted
	}
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Bool("retryable", r.db.retryable(err)).
			Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, removeNoteFromBoard, noteID, boardID); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Bool("retryable", r.db.retryable(err)).
			Msg("error removing note from board's note list")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, removeNoteFromUser, noteID, ownerID); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Bool("retryable", r.db.retryable(err)).
			Msg("error removing note from user's note list")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *noteRepository) listNotes(ctx context.Context, caller string, pred any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(noteColumns...).
		From("notes").
		Where(pred).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error building note list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Bool("retryable", r.db.retryable(err)).
			Msg("error querying notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var note models.Note
		err := rows.Scan(&note.ID, &note.Text, &note.Owner, &note.BoardID,
			&note.CreatedAt, &note.UpdatedAt)
		if err != nil {
			log.Err(err).Str("func", caller).Msg("error scanning note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}
