package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/internal/utils"
	"github.com/avelasco/noteboard/models"
	"github.com/go-chi/chi/v5"
)

// boardRequest is the body of board create and edit operations.
type boardRequest struct {
	Name string `json:"name"`
}

// requireIdentity extracts the authenticated identity the auth middleware
// stored in the request context. A missing identity means the middleware was
// bypassed; the request is rejected with 401.
func (h *Handler) requireIdentity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.respondError(w, r, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return models.Identity{}, false
	}
	return identity, true
}

// pathID parses the named chi URL parameter as a record id.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (h *Handler) listBoards(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	boards, err := h.services.BoardService.ListBoards(r.Context(), identity.Sub)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	if len(boards) == 0 {
		h.respondNoContent(w, r, "Boards not found")
		return
	}

	h.respond(w, r, http.StatusOK, "Boards found", map[string]any{
		"boards": boards,
	})
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	boardID, err := pathID(r, "boardId")
	if err != nil {
		log.Err(err).Msg("invalid board id")
		h.respondError(w, r, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	board, err := h.services.BoardService.GetBoard(r.Context(), boardID, identity.Sub)
	if err != nil {
		if isNotFound(err) {
			h.respondNoContent(w, r, "Board not found")
			return
		}
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "Board found", map[string]any{
		"board": board,
	})
}

func (h *Handler) addBoard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req boardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondError(w, r, http.StatusBadRequest, "missing name property")
		return
	}

	board, err := h.services.BoardService.AddBoard(r.Context(), identity.Sub, req.Name)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusCreated, "Board created", map[string]any{
		"board": board,
	})
}

func (h *Handler) editBoard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	boardID, err := pathID(r, "boardId")
	if err != nil {
		log.Err(err).Msg("invalid board id")
		h.respondError(w, r, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	var req boardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondError(w, r, http.StatusBadRequest, "missing name property")
		return
	}

	board, err := h.services.BoardService.EditBoard(r.Context(), boardID, identity.Sub, req.Name)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "Board updated", map[string]any{
		"board": board,
	})
}

func (h *Handler) deleteBoard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	boardID, err := pathID(r, "boardId")
	if err != nil {
		log.Err(err).Msg("invalid board id")
		h.respondError(w, r, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	if err := h.services.BoardService.DeleteBoard(r.Context(), boardID, identity.Sub); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "Board deleted", map[string]any{
		"board": map[string]any{"id": boardID},
	})
}
