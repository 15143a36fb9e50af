package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avelasco/noteboard/internal/config"
	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/internal/service"
	"github.com/avelasco/noteboard/internal/utils"
	"github.com/avelasco/noteboard/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn       func(ctx context.Context, username, email, password string) (models.User, error)
	signInFn       func(ctx context.Context, login, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authenticateFn func(ctx context.Context, token models.Token) (models.User, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, username, email, password string) (models.User, error) {
	return m.signUpFn(ctx, username, email, password)
}

func (m *mockAuthService) SignIn(ctx context.Context, login, password string) (models.User, error) {
	return m.signInFn(ctx, login, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token models.Token) (models.User, error) {
	return m.authenticateFn(ctx, token)
}

// mockBoardService implements service.BoardService for unit tests.
type mockBoardService struct {
	listBoardsFn  func(ctx context.Context, ownerID int64) ([]models.Board, error)
	getBoardFn    func(ctx context.Context, boardID, ownerID int64) (models.BoardWithNotes, error)
	addBoardFn    func(ctx context.Context, ownerID int64, name string) (models.Board, error)
	editBoardFn   func(ctx context.Context, boardID, ownerID int64, name string) (models.Board, error)
	deleteBoardFn func(ctx context.Context, boardID, ownerID int64) error
}

func (m *mockBoardService) ListBoards(ctx context.Context, ownerID int64) ([]models.Board, error) {
	return m.listBoardsFn(ctx, ownerID)
}

func (m *mockBoardService) GetBoard(ctx context.Context, boardID, ownerID int64) (models.BoardWithNotes, error) {
	return m.getBoardFn(ctx, boardID, ownerID)
}

func (m *mockBoardService) AddBoard(ctx context.Context, ownerID int64, name string) (models.Board, error) {
	return m.addBoardFn(ctx, ownerID, name)
}

func (m *mockBoardService) EditBoard(ctx context.Context, boardID, ownerID int64, name string) (models.Board, error) {
	return m.editBoardFn(ctx, boardID, ownerID, name)
}

func (m *mockBoardService) DeleteBoard(ctx context.Context, boardID, ownerID int64) error {
	return m.deleteBoardFn(ctx, boardID, ownerID)
}

// mockNoteService implements service.NoteService for unit tests.
type mockNoteService struct {
	listNotesFn  func(ctx context.Context, ownerID int64) ([]models.NoteWithBoard, error)
	getNoteFn    func(ctx context.Context, noteID, ownerID int64) (models.NoteWithRelations, error)
	addNoteFn    func(ctx context.Context, ownerID, boardID int64, text string) (models.Note, error)
	editNoteFn   func(ctx context.Context, noteID, ownerID int64, text string) (models.Note, error)
	deleteNoteFn func(ctx context.Context, noteID, ownerID int64) error
}

func (m *mockNoteService) ListNotes(ctx context.Context, ownerID int64) ([]models.NoteWithBoard, error) {
	return m.listNotesFn(ctx, ownerID)
}

func (m *mockNoteService) GetNote(ctx context.Context, noteID, ownerID int64) (models.NoteWithRelations, error) {
	return m.getNoteFn(ctx, noteID, ownerID)
}

func (m *mockNoteService) AddNote(ctx context.Context, ownerID, boardID int64, text string) (models.Note, error) {
	return m.addNoteFn(ctx, ownerID, boardID, text)
}

func (m *mockNoteService) EditNote(ctx context.Context, noteID, ownerID int64, text string) (models.Note, error) {
	return m.editNoteFn(ctx, noteID, ownerID, text)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, noteID, ownerID int64) error {
	return m.deleteNoteFn(ctx, noteID, ownerID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks
// are fine for handlers the test never reaches.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, config.App{}, logger.Nop())
}

// testIdentity is the authenticated identity fixture shared by the gated
// handler tests.
var testIdentity = models.Identity{Sub: 7, Username: "alice", Email: "alice@example.com"}

// withIdentity returns req with identity injected into its context the way
// the auth middleware does.
func withIdentity(req *http.Request, identity models.Identity) *http.Request {
	ctx := context.WithValue(req.Context(), utils.IdentityCtxKey, identity)
	return req.WithContext(ctx)
}

// decodeEnvelope unmarshals the uniform success envelope from rec.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var envelope models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

// decodeErrorPayload unmarshals the normalized error payload from rec.
func decodeErrorPayload(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorPayload {
	t.Helper()
	var payload models.ErrorPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

// dataField digs a named object out of the envelope's data field.
func dataField(t *testing.T, envelope models.Response, name string) map[string]any {
	t.Helper()
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok, "data is not an object: %v", envelope.Data)
	field, ok := data[name].(map[string]any)
	require.True(t, ok, "data.%s is not an object: %v", name, data[name])
	return field
}
