package http

import (
	"net/http"
	"runtime/debug"

	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/internal/utils"
	"github.com/avelasco/noteboard/models"
)

// noContentMarker is the error string carried by "not found" read responses.
// Reads that match nothing answer HTTP 200 with a null data field instead of
// 404; clients distinguish the two outcomes by this marker.
const noContentMarker = "No Content"

// respond writes the uniform success envelope.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, statusCode int, message string, data any) {
	log := logger.FromRequest(r)

	response := models.Response{
		Message: message,
		Data:    data,
		Error:   nil,
	}

	if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// respondNoContent writes the 200-with-null-data envelope used by read
// operations that matched nothing.
func (h *Handler) respondNoContent(w http.ResponseWriter, r *http.Request, message string) {
	log := logger.FromRequest(r)

	response := models.Response{
		Message: message,
		Data:    nil,
		Error:   noContentMarker,
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// respondError writes the normalized error payload. In dev mode the payload
// carries the current goroutine stack; server-side logging of the error is
// controlled independently by the LogErrors toggle.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	log := logger.FromRequest(r)

	payload := models.ErrorPayload{
		StatusCode: statusCode,
		Error:      http.StatusText(statusCode),
		Message:    message,
	}

	if h.appCfg.DevMode {
		payload.Stack = string(debug.Stack())
	}

	if h.appCfg.LogErrors {
		log.Error().
			Int("status", statusCode).
			Str("message", message).
			Msg("request failed")
	}

	if _, err := utils.WriteJSON(w, payload, statusCode); err != nil {
		log.Err(err).Msg("error writing error response")
	}
}

// respondServiceError normalizes a service or store error to its HTTP status
// and user-facing message.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode, message := statusFromError(err)
	h.respondError(w, r, statusCode, message)
}
