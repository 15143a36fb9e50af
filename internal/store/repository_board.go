// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adrián Velasco

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// boardRepository is the PostgreSQL-backed implementation of
// [BoardRepository]. Every query carries the owner id in its predicate so a
// board belonging to a different user is indistinguishable from a missing
// one.
type boardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBoardRepository constructs a [BoardRepository] backed by the provided
// database connection and logger.
func NewBoardRepository(db *DB, logger *logger.Logger) BoardRepository {
	logger.Debug().Msg("creating board repository")
	return &boardRepository{
		db:     db,
		logger: logger,
	}
}

// ListBoardsByOwner returns every board owned by ownerID, oldest first.
func (r *boardRepository) ListBoardsByOwner(ctx context.Context, ownerID int64) ([]models.Board, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(boardColumns...).
		From("boards").
		Where(sq.Eq{"owner": ownerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.ListBoardsByOwner").Msg("error building board list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*boardRepository.ListBoardsByOwner").
			Bool("retryable", r.db.retryable(err)).
			Msg("error querying boards")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	boards := []models.Board{}
	for rows.Next() {
		board, err := scanBoard(rows)
		if err != nil {
			log.Err(err).Str("func", "*boardRepository.ListBoardsByOwner").Msg("error scanning board row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		boards = append(boards, board)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return boards, nil
}

// FindBoardByIDAndOwner retrieves a single board scoped by its owner.
// Returns [ErrBoardNotFound] when no matching row exists.
func (r *boardRepository) FindBoardByIDAndOwner(ctx context.Context, boardID, ownerID int64) (models.Board, error) {
	return r.findBoard(ctx, "*boardRepository.FindBoardByIDAndOwner",
		sq.Eq{"id": boardID, "owner": ownerID})
}

// FindBoardByOwnerAndName retrieves the owner's board with the given name.
// Used by the duplicate-name check before creation.
func (r *boardRepository) FindBoardByOwnerAndName(ctx context.Context, ownerID int64, name string) (models.Board, error) {
	return r.findBoard(ctx, "*boardRepository.FindBoardByOwnerAndName",
		sq.Eq{"owner": ownerID, "name": name})
}

// CreateBoard inserts the board and appends its id to the owner's
// denormalized board list in one transaction.
//
// Error handling:
//   - unique_violation on (owner, name) → [ErrBoardNameAlreadyExists].
func (r *boardRepository) CreateBoard(ctx context.Context, board models.Board) (models.Board, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.CreateBoard").Msg("error beginning transaction")
		return models.Board{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createBoard,
		board.Name, board.Owner, board.CreatedAt, board.UpdatedAt)
	if err := row.Scan(&board.ID); err != nil {
		log.Err(err).
			Str("func", "*boardRepository.CreateBoard").
			Bool("retryable", r.db.retryable(err)).
			Msg("error creating board")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Board{}, ErrBoardNameAlreadyExists
		}

		return models.Board{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if _, err := tx.ExecContext(ctx, appendBoardToUser, board.ID, board.Owner); err != nil {
		log.Err(err).
			Str("func", "*boardRepository.CreateBoard").
			Bool("retryable", r.db.retryable(err)).
			Msg("error appending board to user's board list")
		return models.Board{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*boardRepository.CreateBoard").Msg("error committing transaction")
		return models.Board{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	board.NoteIDs = []int64{}

	return board, nil
}

// UpdateBoardName renames the board matched by {boardID, ownerID}.
// Returns [ErrNoBoardUpdated] when zero rows were affected.
func (r *boardRepository) UpdateBoardName(ctx context.Context, boardID, ownerID int64, name string, updatedAt int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateBoardName, name, updatedAt, boardID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*boardRepository.UpdateBoardName").
			Bool("retryable", r.db.retryable(err)).
			Msg("error updating board name")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrBoardNameAlreadyExists
		}

		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoBoardUpdated
	}

	return nil
}

// DeleteBoard removes the board matched by {boardID, ownerID}, cascades
// deletion of its notes, pulls the board id from the owner's board list, and
// recomputes the owner's note list, all in one transaction. Returns
// [ErrNoBoardDeleted] when the board does not exist or is not owned by
// ownerID.
func (r *boardRepository) DeleteBoard(ctx context.Context, boardID, ownerID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.DeleteBoard").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// notes go first so the board's FK does not block its removal
	if _, err := tx.ExecContext(ctx, deleteBoardNotes, boardID, ownerID); err != nil {
		log.Err(err).
			Str("func", "*boardRepository.DeleteBoard").
			Bool("retryable", r.db.retryable(err)).
			Msg("error deleting board notes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteBoard, boardID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*boardRepository.DeleteBoard").
			Bool("retryable", r.db.retryable(err)).
			Msg("error deleting board")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoBoardDeleted
	}

	if _, err := tx.ExecContext(ctx, removeBoardFromUser, boardID, ownerID); err != nil {
		log.Err(err).
			Str("func", "*boardRepository.DeleteBoard").
			Bool("retryable", r.db.retryable(err)).
			Msg("error removing board from user's board list")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, refreshUserNoteList, ownerID); err != nil {
		log.Err(err).
			Str("func", "*boardRepository.DeleteBoard").
			Bool("retryable", r.db.retryable(err)).
			Msg("error refreshing user's note list")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*boardRepository.DeleteBoard").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *boardRepository) findBoard(ctx context.Context, caller string, pred any) (models.Board, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(boardColumns...).From("boards").Where(pred).ToSql()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error building board lookup query")
		return models.Board{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	board, err := scanBoard(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Board{}, ErrBoardNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Bool("retryable", r.db.retryable(err)).
			Msg("error scanning board row")
		return models.Board{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return board, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBoard(row rowScanner) (models.Board, error) {
	var (
		board   models.Board
		noteIDs []byte
	)

	err := row.Scan(&board.ID, &board.Name, &board.Owner, &noteIDs,
		&board.CreatedAt, &board.UpdatedAt)
	if err != nil {
		return models.Board{}, err
	}

	if board.NoteIDs, err = scanIDList(noteIDs); err != nil {
		return models.Board{}, err
	}

	return board, nil
}
