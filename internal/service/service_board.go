// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adrián Velasco

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/internal/store"
	"github.com/avelasco/noteboard/models"
)

// boardService is the concrete implementation of BoardService. All
// operations are scoped by the owner id taken from the authenticated
// identity, never from the request body.
type boardService struct {
	boardRepository store.BoardRepository
	noteRepository  store.NoteRepository
	logger          *logger.Logger
}

// NewBoardService constructs a BoardService wired to the given repositories.
func NewBoardService(boardRepository store.BoardRepository, noteRepository store.NoteRepository, logger *logger.Logger) BoardService {
	return &boardService{
		boardRepository: boardRepository,
		noteRepository:  noteRepository,
		logger:          logger,
	}
}

// ListBoards returns every board owned by ownerID.
func (b *boardService) ListBoards(ctx context.Context, ownerID int64) ([]models.Board, error) {
	log := logger.FromContext(ctx)

	boards, err := b.boardRepository.ListBoardsByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("board listing failed")
		return nil, fmt.Errorf("board listing failed: %w", err)
	}

	return boards, nil
}

// GetBoard returns a single board with its notes attached in place of the
// id list. A board that does not exist or belongs to another user surfaces
// as store.ErrBoardNotFound.
func (b *boardService) GetBoard(ctx context.Context, boardID, ownerID int64) (models.BoardWithNotes, error) {
	log := logger.FromContext(ctx)

	board, err := b.boardRepository.FindBoardByIDAndOwner(ctx, boardID, ownerID)
	if err != nil {
		log.Err(err).Int64("board", boardID).Int64("owner", ownerID).Msg("board lookup failed")
		return models.BoardWithNotes{}, fmt.Errorf("board lookup failed: %w", err)
	}

	notes, err := b.noteRepository.ListNotesByBoard(ctx, boardID, ownerID)
	if err != nil {
		log.Err(err).Int64("board", boardID).Msg("board notes listing failed")
		return models.BoardWithNotes{}, fmt.Errorf("board notes listing failed: %w", err)
	}

	return models.BoardWithNotes{Board: board, Notes: notes}, nil
}

// AddBoard creates a board for ownerID.
//
// Returns:
//   - ErrInvalidDataProvided if name is empty.
//   - store.ErrBoardNameAlreadyExists if the owner already has a board with
//     that name.
func (b *boardService) AddBoard(ctx context.Context, ownerID int64, name string) (models.Board, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Int64("owner", ownerID).Msg("empty board name provided")
		return models.Board{}, ErrInvalidDataProvided
	}

	now := time.Now().Unix()
	board := models.Board{
		Name:      name,
		Owner:     ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	createdBoard, err := b.boardRepository.CreateBoard(ctx, board)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Str("name", name).Msg("board creation ended with error")
		return models.Board{}, fmt.Errorf("board creation ended with error: %w", err)
	}

	return createdBoard, nil
}

// EditBoard renames the board and returns the refreshed record.
//
// A zero-row update surfaces as store.ErrNoBoardUpdated.
func (b *boardService) EditBoard(ctx context.Context, boardID, ownerID int64, name string) (models.Board, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Int64("board", boardID).Msg("empty board name provided")
		return models.Board{}, ErrInvalidDataProvided
	}

	err := b.boardRepository.UpdateBoardName(ctx, boardID, ownerID, name, time.Now().Unix())
	if err != nil {
		log.Err(err).Int64("board", boardID).Int64("owner", ownerID).Msg("board rename ended with error")
		return models.Board{}, fmt.Errorf("board rename ended with error: %w", err)
	}

	board, err := b.boardRepository.FindBoardByIDAndOwner(ctx, boardID, ownerID)
	if err != nil {
		log.Err(err).Int64("board", boardID).Msg("renamed board lookup failed")
		return models.Board{}, fmt.Errorf("renamed board lookup failed: %w", err)
	}

	return board, nil
}

// DeleteBoard removes the board together with its notes. A zero-row delete
// surfaces as store.ErrNoBoardDeleted.
func (b *boardService) DeleteBoard(ctx context.Context, boardID, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := b.boardRepository.DeleteBoard(ctx, boardID, ownerID); err != nil {
		log.Err(err).Int64("board", boardID).Int64("owner", ownerID).Msg("board deletion ended with error")
		return fmt.Errorf("board deletion ended with error: %w", err)
	}

	return nil
}
