package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avelasco/noteboard/internal/config"
	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/internal/store"
	"github.com/avelasco/noteboard/internal/utils"
	"github.com/avelasco/noteboard/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the JWT
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}
}

// SignUp creates a new account.
//
// It validates that username, email, and password are all non-empty, rejects
// a syntactically invalid e-mail address, bcrypt-hashes the password, and
// delegates persistence to the UserRepository. The plain-text password never
// reaches the repository or the logs.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrUsernameAlreadyExists if the username is taken.
//   - ErrInvalidEmail if the e-mail address is malformed.
//   - store.ErrEmailAlreadyExists if the e-mail is taken.
func (a *authService) SignUp(ctx context.Context, username, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || email == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid sign-up data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByUsername(ctx, username)
	if err == nil {
		return models.User{}, store.ErrUsernameAlreadyExists
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.IsEmailValid(email) {
		log.Error().Str("email", email).Msg("invalid email provided")
		return models.User{}, ErrInvalidEmail
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := time.Now().Unix()
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// SignIn authenticates an existing user.
//
// The login identifier is matched against both the username and the e-mail
// column. An unknown identifier and a failed password comparison both return
// ErrWrongCredentials so a caller cannot probe which accounts exist.
func (a *authService) SignIn(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid sign-in data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLoginOrEmail(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("login", login).Msg("sign-in attempt for unknown user")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.PasswordHash) {
		log.Warn().
			Int64("id", foundUser.ID).
			Str("login", login).
			Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey and carries the
// configured tokenIssuer as the "iss" claim.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (wrong issuer, wrong algorithm,
// malformed token) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate resolves a parsed token to its stored account.
//
// Both the numeric subject and the e-mail claim must match a single record;
// a token whose claims no longer line up with the users table is rejected
// with ErrTokenIsExpiredOrInvalid.
func (a *authService) Authenticate(ctx context.Context, token models.Token) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByIDAndEmail(ctx, token.UserID, token.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Int64("sub", token.UserID).Msg("token claims do not match any user")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Int64("sub", token.UserID).Msg("user search by id and email failed")
		return models.User{}, fmt.Errorf("user search by id and email failed: %w", err)
	}

	return user, nil
}
