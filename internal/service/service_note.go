package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/internal/store"
	"github.com/avelasco/noteboard/models"
)

// noteService is the concrete implementation of NoteService.
type noteService struct {
	noteRepository  store.NoteRepository
	boardRepository store.BoardRepository
	userRepository  store.UserRepository
	logger          *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given repositories.
// The board and user repositories serve the relation lookups on reads and
// the board-ownership check on create.
func NewNoteService(noteRepository store.NoteRepository, boardRepository store.BoardRepository, userRepository store.UserRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository:  noteRepository,
		boardRepository: boardRepository,
		userRepository:  userRepository,
		logger:          logger,
	}
}

// ListNotes returns every note owned by ownerID with its board attached.
func (n *noteService) ListNotes(ctx context.Context, ownerID int64) ([]models.NoteWithBoard, error) {
	log := logger.FromContext(ctx)

	notes, err := n.noteRepository.ListNotesByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("note listing failed")
		return nil, fmt.Errorf("note listing failed: %w", err)
	}

	// one lookup per distinct board, not per note
	boardsByID := make(map[int64]models.Board)
	populated := make([]models.NoteWithBoard, 0, len(notes))
	for _, note := range notes {
		board, ok := boardsByID[note.BoardID]
		if !ok {
			board, err = n.boardRepository.FindBoardByIDAndOwner(ctx, note.BoardID, ownerID)
			if err != nil {
				log.Err(err).Int64("board", note.BoardID).Msg("note board lookup failed")
				return nil, fmt.Errorf("note board lookup failed: %w", err)
			}
			boardsByID[note.BoardID] = board
		}
		populated = append(populated, models.NoteWithBoard{Note: note, Board: board})
	}

	return populated, nil
}

// GetNote returns a single note with its board and owner attached. The
// owner record is serialized without the password hash.
func (n *noteService) GetNote(ctx context.Context, noteID, ownerID int64) (models.NoteWithRelations, error) {
	log := logger.FromContext(ctx)

	note, err := n.noteRepository.FindNoteByIDAndOwner(ctx, noteID, ownerID)
	if err != nil {
		log.Err(err).Int64("note", noteID).Int64("owner", ownerID).Msg("note lookup failed")
		return models.NoteWithRelations{}, fmt.Errorf("note lookup failed: %w", err)
	}

	board, err := n.boardRepository.FindBoardByIDAndOwner(ctx, note.BoardID, ownerID)
	if err != nil {
		log.Err(err).Int64("board", note.BoardID).Msg("note board lookup failed")
		return models.NoteWithRelations{}, fmt.Errorf("note board lookup failed: %w", err)
	}

	owner, err := n.userRepository.FindUserByID(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("note owner lookup failed")
		return models.NoteWithRelations{}, fmt.Errorf("note owner lookup failed: %w", err)
	}

	return models.NoteWithRelations{Note: note, Board: board, Owner: owner}, nil
}

// AddNote pins a new note to a board owned by the requester.
//
// Returns:
//   - ErrInvalidDataProvided if text is empty or boardID is zero.
//   - ErrBoardAccessDenied if the board is absent or owned by someone else.
func (n *noteService) AddNote(ctx context.Context, ownerID, boardID int64, text string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if text == "" || boardID == 0 {
		log.Error().Int64("owner", ownerID).Msg("invalid note data provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	_, err := n.boardRepository.FindBoardByIDAndOwner(ctx, boardID, ownerID)
	if errors.Is(err, store.ErrBoardNotFound) {
		log.Warn().Int64("board", boardID).Int64("owner", ownerID).Msg("note creation on foreign board rejected")
		return models.Note{}, ErrBoardAccessDenied
	}
	if err != nil {
		log.Err(err).Int64("board", boardID).Msg("note board ownership check failed")
		return models.Note{}, fmt.Errorf("note board ownership check failed: %w", err)
	}

	now := time.Now().Unix()
	note := models.Note{
		Text:      text,
		Owner:     ownerID,
		BoardID:   boardID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	createdNote, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("board", boardID).Int64("owner", ownerID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// EditNote replaces the note text and returns the refreshed record.
//
// A zero-row update surfaces as store.ErrNoNoteUpdated.
func (n *noteService) EditNote(ctx context.Context, noteID, ownerID int64, text string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if text == "" {
		log.Error().Int64("note", noteID).Msg("empty note text provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	err := n.noteRepository.UpdateNoteText(ctx, noteID, ownerID, text, time.Now().Unix())
	if err != nil {
		log.Err(err).Int64("note", noteID).Int64("owner", ownerID).Msg("note edit ended with error")
		return models.Note{}, fmt.Errorf("note edit ended with error: %w", err)
	}

	note, err := n.noteRepository.FindNoteByIDAndOwner(ctx, noteID, ownerID)
	if err != nil {
		log.Err(err).Int64("note", noteID).Msg("edited note lookup failed")
		return models.Note{}, fmt.Errorf("edited note lookup failed: %w", err)
	}

	return note, nil
}

// DeleteNote removes the note. A zero-row delete surfaces as
// store.ErrNoNoteDeleted.
func (n *noteService) DeleteNote(ctx context.Context, noteID, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := n.noteRepository.DeleteNote(ctx, noteID, ownerID); err != nil {
		log.Err(err).Int64("note", noteID).Int64("owner", ownerID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
