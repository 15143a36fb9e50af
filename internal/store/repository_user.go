package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and the various lookups used by sign-up,
// sign-in, and the auth middleware against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with the server-assigned ID.
//
// Error handling:
//   - unique_violation (23505) on the username index → [ErrUsernameAlreadyExists].
//   - unique_violation on the email index → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)

	if err := row.Scan(&user.ID); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.retryable(err)).
			Msg("error creating user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			if postgresConstraint(err) == "users_email_key" {
				return models.User{}, ErrEmailAlreadyExists
			}
			return models.User{}, ErrUsernameAlreadyExists
		}

		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.BoardIDs = []int64{}
	user.NoteIDs = []int64{}

	return user, nil
}

// FindUserByID retrieves the account with the given primary key.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": id})
}

// FindUserByUsername retrieves the account whose username matches exactly.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", sq.Eq{"username": username})
}

// FindUserByEmail retrieves the account whose e-mail matches exactly.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

// FindUserByLoginOrEmail retrieves the account whose username OR e-mail
// matches the sign-in identifier.
func (r *userRepository) FindUserByLoginOrEmail(ctx context.Context, login string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByLoginOrEmail",
		sq.Or{sq.Eq{"username": login}, sq.Eq{"email": login}})
}

// FindUserByIDAndEmail retrieves the account matching both the token subject
// and the e-mail claim. Used by the auth middleware to re-validate issued
// tokens against the stored record on every request.
func (r *userRepository) FindUserByIDAndEmail(ctx context.Context, id int64, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByIDAndEmail",
		sq.Eq{"id": id, "email": email})
}

// findUser runs a single-row user lookup with the given squirrel predicate.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Query build failure → wrapped [ErrBuildingSQLQuery].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) findUser(ctx context.Context, caller string, pred any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns...).From("users").Where(pred).ToSql()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error building user lookup query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user     models.User
		boardIDs []byte
		noteIDs  []byte
	)

	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&boardIDs, &noteIDs, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Bool("retryable", r.db.retryable(err)).
			Msg("error scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if user.BoardIDs, err = scanIDList(boardIDs); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if user.NoteIDs, err = scanIDList(noteIDs); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
