package http

import (
	"encoding/json"
	"net/http"

	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/internal/utils"
	"github.com/avelasco/noteboard/models"
)

// signUpRequest is the body of POST /api/auth/sign-up.
type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signInRequest is the body of POST /api/auth/sign-in. The username field
// accepts either a username or an e-mail address.
type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondError(w, r, http.StatusBadRequest, "missing username, email or password")
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user created")

	h.respond(w, r, http.StatusCreated, "User successfully created", map[string]any{
		"user": registeredUser,
	})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondError(w, r, http.StatusBadRequest, "missing username/email or password")
		return
	}

	foundUser, err := h.services.AuthService.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.respondError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	h.respond(w, r, http.StatusOK, "User logged in", models.SignInData{
		AccessToken: token.String(),
		User:        foundUser.Public(),
	})
}

// verify echoes the identity resolved by the auth middleware as proof the
// presented token is valid.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.respondError(w, r, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	h.respond(w, r, http.StatusOK, "Valid user token", map[string]any{
		"user": identity,
	})
}

// sanityCheck is the error-path probe: it always answers 404 through the
// error responder.
func (h *Handler) sanityCheck(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, http.StatusNotFound, "No encontrado")
}
