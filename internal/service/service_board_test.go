package service

import (
	"context"
	"testing"

	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/internal/mock"
	"github.com/avelasco/noteboard/internal/store"
	"github.com/avelasco/noteboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBoardSvc(t *testing.T, ctrl *gomock.Controller) (*boardService, *mock.MockBoardRepository, *mock.MockNoteRepository) {
	t.Helper()
	mockBoards := mock.NewMockBoardRepository(ctrl)
	mockNotes := mock.NewMockNoteRepository(ctrl)

	svc := NewBoardService(mockBoards, mockNotes, logger.Nop()).(*boardService)

	return svc, mockBoards, mockNotes
}

func TestBoardService_ListBoards_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBoards, _ := newTestBoardSvc(t, ctrl)
	ctx := context.Background()

	mockBoards.EXPECT().
		ListBoardsByOwner(ctx, int64(7)).
		Return([]models.Board{{ID: 1, Name: "work", Owner: 7}}, nil)

	boards, err := svc.ListBoards(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, boards, 1)
}

func TestBoardService_GetBoard_PopulatesNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBoards, mockNotes := newTestBoardSvc(t, ctrl)
	ctx := context.Background()

	mockBoards.EXPECT().
		FindBoardByIDAndOwner(ctx, int64(3), int64(7)).
		Return(models.Board{ID: 3, Name: "work", Owner: 7, NoteIDs: []int64{10}}, nil)
	mockNotes.EXPECT().
		ListNotesByBoard(ctx, int64(3), int64(7)).
		Return([]models.Note{{ID: 10, Text: "buy milk", Owner: 7, BoardID: 3}}, nil)

	board, err := svc.GetBoard(ctx, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), board.ID)
	require.Len(t, board.Notes, 1)
	assert.Equal(t, "buy milk", board.Notes[0].Text)
}

func TestBoardService_GetBoard_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBoards, _ := newTestBoardSvc(t, ctrl)
	ctx := context.Background()

	mockBoards.EXPECT().
		FindBoardByIDAndOwner(ctx, int64(3), int64(99)).
		Return(models.Board{}, store.ErrBoardNotFound)

	_, err := svc.GetBoard(ctx, 3, 99)
	assert.ErrorIs(t, err, store.ErrBoardNotFound)
}

func TestBoardService_AddBoard_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBoards, _ := newTestBoardSvc(t, ctrl)
	ctx := context.Background()

	mockBoards.EXPECT().
		CreateBoard(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, board models.Board) (models.Board, error) {
			require.Equal(t, "work", board.Name)
			require.Equal(t, int64(7), board.Owner)
			require.NotZero(t, board.CreatedAt)
			board.ID = 3
			return board, nil
		})

	board, err := svc.AddBoard(ctx, 7, "work")
	require.NoError(t, err)
	assert.Equal(t, int64(3), board.ID)
}

func TestBoardService_AddBoard_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBoardSvc(t, ctrl)

	_, err := svc.AddBoard(context.Background(), 7, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestBoardService_AddBoard_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBoards, _ := newTestBoardSvc(t, ctrl)
	ctx := context.Background()

	mockBoards.EXPECT().
		CreateBoard(ctx, gomock.Any()).
		Return(models.Board{}, store.ErrBoardNameAlreadyExists)

	_, err := svc.AddBoard(ctx, 7, "work")
	assert.ErrorIs(t, err, store.ErrBoardNameAlreadyExists)
}

func TestBoardService_EditBoard_ReturnsRefreshedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBoards, _ := newTestBoardSvc(t, ctrl)
	ctx := context.Background()

	mockBoards.EXPECT().
		UpdateBoardName(ctx, int64(3), int64(7), "renamed", gomock.Any()).
		Return(nil)
	mockBoards.EXPECT().
		FindBoardByIDAndOwner(ctx, int64(3), int64(7)).
		Return(models.Board{ID: 3, Name: "renamed", Owner: 7}, nil)

	board, err := svc.EditBoard(ctx, 3, 7, "renamed")
	require.NoError(t, err)
	assert.Equal(t, "renamed", board.Name)
}

func TestBoardService_EditBoard_NothingMatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBoards, _ := newTestBoardSvc(t, ctrl)
	ctx := context.Background()

	mockBoards.EXPECT().
		UpdateBoardName(ctx, int64(3), int64(7), "renamed", gomock.Any()).
		Return(store.ErrNoBoardUpdated)

	_, err := svc.EditBoard(ctx, 3, 7, "renamed")
	assert.ErrorIs(t, err, store.ErrNoBoardUpdated)
}

func TestBoardService_DeleteBoard_NothingMatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBoards, _ := newTestBoardSvc(t, ctrl)
	ctx := context.Background()

	mockBoards.EXPECT().
		DeleteBoard(ctx, int64(3), int64(7)).
		Return(store.ErrNoBoardDeleted)

	err := svc.DeleteBoard(ctx, 3, 7)
	assert.ErrorIs(t, err, store.ErrNoBoardDeleted)
}
