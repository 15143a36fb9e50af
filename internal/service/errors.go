package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidEmail        = errors.New("invalid email")

	// ErrWrongCredentials covers both an unknown user and a wrong password
	// so that sign-in failures are indistinguishable to the caller.
	ErrWrongCredentials = errors.New("wrong username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrBoardAccessDenied is returned when a note operation references a
	// board that does not exist or belongs to another user.
	ErrBoardAccessDenied = errors.New("board does not belong to user")
)
