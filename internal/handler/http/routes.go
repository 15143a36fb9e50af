package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/sign-up", h.signUp)
		r.Post("/api/auth/sign-in", h.signIn)
		r.Get("/api/auth/sanity-check", h.sanityCheck)
	})

	// routes gated by the bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/verify", h.verify)

		r.Get("/api/boards", h.listBoards)
		r.Get("/api/boards/", h.listBoards)
		r.Get("/api/boards/{boardId}", h.getBoard)
		r.Post("/api/boards/add", h.addBoard)
		r.Put("/api/boards/edit/{boardId}", h.editBoard)
		r.Delete("/api/boards/delete/{boardId}", h.deleteBoard)

		r.Get("/api/notes", h.listNotes)
		r.Get("/api/notes/", h.listNotes)
		r.Get("/api/notes/{noteId}", h.getNote)
		r.Post("/api/notes/add", h.addNote)
		r.Put("/api/notes/edit/{noteId}", h.editNote)
		r.Delete("/api/notes/delete/{noteId}", h.deleteNote)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, http.StatusNotFound, "Not Found")
	})
	router.MethodNotAllowed(h.checkHTTPMethod(router))

	return router
}
