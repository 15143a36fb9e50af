// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adrián Velasco

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avelasco/noteboard/internal/service"
	"github.com/avelasco/noteboard/internal/store"
	"github.com/avelasco/noteboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// sign-up
// ─────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, username, email, password string) (models.User, error) {
			require.Equal(t, "alice", username)
			require.Equal(t, "alice@example.com", email)
			require.Equal(t, "secret", password)
			return models.User{ID: 7, Username: username, Email: email}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up",
		strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "User successfully created", envelope.Message)
	assert.Nil(t, envelope.Error)

	user := dataField(t, envelope, "user")
	assert.Equal(t, float64(7), user["id"])
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, rec.Body.String(), "password", "password must never appear in a response")
}

func TestSignUp_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeErrorPayload(t, rec)
	assert.Equal(t, http.StatusBadRequest, payload.StatusCode)
	assert.Equal(t, "Bad Request", payload.Error)
}

func TestSignUp_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up",
		strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUp_Conflicts(t *testing.T) {
	for _, tc := range []struct {
		name    string
		svcErr  error
		message string
	}{
		{"duplicate username", store.ErrUsernameAlreadyExists, "username already exists in the database"},
		{"duplicate email", store.ErrEmailAlreadyExists, "email already exists in the database"},
		{"invalid email", service.ErrInvalidEmail, "email not valid"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuthService{
				signUpFn: func(_ context.Context, _, _, _ string) (models.User, error) {
					return models.User{}, tc.svcErr
				},
			}

			h := newTestHandler(t, &service.Services{AuthService: auth})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up",
				strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"secret"}`))
			rec := httptest.NewRecorder()

			h.signUp(rec, req)

			require.Equal(t, http.StatusConflict, rec.Code)
			payload := decodeErrorPayload(t, rec)
			assert.Equal(t, http.StatusConflict, payload.StatusCode)
			assert.Equal(t, "Conflict", payload.Error)
			assert.Equal(t, tc.message, payload.Message)
		})
	}
}

// ─────────────────────────────────────────────
// sign-in
// ─────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, login, password string) (models.User, error) {
			require.Equal(t, "alice", login)
			return models.User{ID: 7, Username: "alice", Email: "alice@example.com"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in",
		strings.NewReader(`{"username":"alice","password":"secret"}`))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "User logged in", envelope.Message)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "signed.jwt.token", data["access_token"])

	user, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "password")
}

func TestSignIn_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrWrongCredentials
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in",
		strings.NewReader(`{"username":"alice","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	payload := decodeErrorPayload(t, rec)
	assert.Equal(t, "username/email and password not valid", payload.Message)
}

func TestSignIn_TokenCreationFailure(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{ID: 7}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in",
		strings.NewReader(`{"username":"alice","password":"secret"}`))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// verify and sanity-check
// ─────────────────────────────────────────────

func TestVerify_EchoesIdentity(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/auth/verify", nil), testIdentity)
	rec := httptest.NewRecorder()

	h.verify(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Valid user token", envelope.Message)

	user := dataField(t, envelope, "user")
	assert.Equal(t, float64(7), user["sub"])
	assert.Equal(t, "alice", user["username"])
}

func TestVerify_NoIdentity(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", nil)
	rec := httptest.NewRecorder()

	h.verify(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSanityCheck_Always404(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/sanity-check", nil)
	rec := httptest.NewRecorder()

	h.sanityCheck(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	payload := decodeErrorPayload(t, rec)
	assert.Equal(t, http.StatusNotFound, payload.StatusCode)
	assert.Equal(t, "Not Found", payload.Error)
	assert.Equal(t, "No encontrado", payload.Message)
}

func TestRespondError_DevModeCarriesStack(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	h.appCfg.DevMode = true

	req := httptest.NewRequest(http.MethodGet, "/api/auth/sanity-check", nil)
	rec := httptest.NewRecorder()

	h.sanityCheck(rec, req)

	payload := decodeErrorPayload(t, rec)
	assert.NotEmpty(t, payload.Stack)
}

func TestRespondError_ProdModeOmitsStack(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/sanity-check", nil)
	rec := httptest.NewRecorder()

	h.sanityCheck(rec, req)

	payload := decodeErrorPayload(t, rec)
	assert.Empty(t, payload.Stack)
	assert.NotContains(t, rec.Body.String(), "stack")
}
