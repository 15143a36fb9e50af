package http

import (
	"errors"
	"net/http"

	"github.com/avelasco/noteboard/internal/service"
	"github.com/avelasco/noteboard/internal/store"
)

// classified pairs an HTTP status with the user-facing message for one
// service or store sentinel.
type classified struct {
	statusCode int
	message    string
}

// errorStatusMap normalizes every sentinel the services surface into the
// status and message the API contract promises. Conventions preserved from
// the API's first version: zero-rows-affected updates answer 501, zero-rows
// deletes answer 409.
var errorStatusMap = map[error]classified{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, "missing or empty required fields"},

	store.ErrUsernameAlreadyExists: {http.StatusConflict, "username already exists in the database"},
	store.ErrEmailAlreadyExists:    {http.StatusConflict, "email already exists in the database"},
	service.ErrInvalidEmail:        {http.StatusConflict, "email not valid"},

	service.ErrWrongCredentials:        {http.StatusUnauthorized, "username/email and password not valid"},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized)},
	service.ErrBoardAccessDenied:       {http.StatusUnauthorized, "unauthorized action"},

	store.ErrBoardNameAlreadyExists: {http.StatusConflict, "a board with that name already exists"},
	store.ErrNoBoardUpdated:         {http.StatusNotImplemented, "bad implementation"},
	store.ErrNoBoardDeleted:         {http.StatusConflict, "the board cannot be deleted, probably it does not exist"},
	store.ErrNoNoteUpdated:          {http.StatusNotImplemented, "bad implementation"},
	store.ErrNoNoteDeleted:          {http.StatusConflict, "the note cannot be deleted, probably it does not exist"},

	// the refreshed-record lookup after a successful update came back empty
	store.ErrBoardNotFound: {http.StatusConflict, "something went wrong"},
	store.ErrNoteNotFound:  {http.StatusConflict, "something went wrong"},
}

// isNotFound reports whether err is an empty-read outcome. Read handlers
// turn these into the 200-with-null-data convention instead of an error
// payload.
func isNotFound(err error) bool {
	return errors.Is(err, store.ErrBoardNotFound) ||
		errors.Is(err, store.ErrNoteNotFound) ||
		errors.Is(err, store.ErrNoUserWasFound)
}

// statusFromError resolves err against errorStatusMap; anything unmapped is
// a generic internal error.
func statusFromError(err error) (int, string) {
	for sentinel, c := range errorStatusMap {
		if errors.Is(err, sentinel) {
			return c.statusCode, c.message
		}
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
