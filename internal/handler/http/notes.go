package http

import (
	"encoding/json"
	"net/http"

	"github.com/avelasco/noteboard/internal/logger"
)

// addNoteRequest is the body of POST /api/notes/add.
type addNoteRequest struct {
	Text    string `json:"text"`
	BoardID int64  `json:"boardId"`
}

// editNoteRequest is the body of PUT /api/notes/edit/{noteId}.
type editNoteRequest struct {
	Text string `json:"text"`
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), identity.Sub)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	if len(notes) == 0 {
		h.respondNoContent(w, r, "Notes not found")
		return
	}

	h.respond(w, r, http.StatusOK, "Notes found", map[string]any{
		"notes": notes,
	})
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	noteID, err := pathID(r, "noteId")
	if err != nil {
		log.Err(err).Msg("invalid note id")
		h.respondError(w, r, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), noteID, identity.Sub)
	if err != nil {
		if isNotFound(err) {
			h.respondNoContent(w, r, "Note not found")
			return
		}
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "Note found", map[string]any{
		"note": note,
	})
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req addNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondError(w, r, http.StatusBadRequest, "missing text or boardId property")
		return
	}

	note, err := h.services.NoteService.AddNote(r.Context(), identity.Sub, req.BoardID, req.Text)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusCreated, "Note created", map[string]any{
		"note": note,
	})
}

func (h *Handler) editNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	noteID, err := pathID(r, "noteId")
	if err != nil {
		log.Err(err).Msg("invalid note id")
		h.respondError(w, r, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	var req editNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondError(w, r, http.StatusBadRequest, "missing text property")
		return
	}

	note, err := h.services.NoteService.EditNote(r.Context(), noteID, identity.Sub, req.Text)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "Note updated", map[string]any{
		"note": note,
	})
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	noteID, err := pathID(r, "noteId")
	if err != nil {
		log.Err(err).Msg("invalid note id")
		h.respondError(w, r, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), noteID, identity.Sub); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, "Note deleted", map[string]any{
		"note": map[string]any{"id": noteID},
	})
}
