package store

import "errors"

// Sentinel errors returned by Store operations. Handlers translate these into
// user-facing notices; anything else is an infrastructure failure and is left
// to propagate.
var (
	// ErrNotFound: the referenced post or user does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameTaken: registration conflict on the unique username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmptyField: a required field is empty after trimming.
	ErrEmptyField = errors.New("required field is empty")
	// ErrPasswordMismatch: password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrBadCredentials: unknown username or wrong password.
	ErrBadCredentials = errors.New("invalid username or password")
)
