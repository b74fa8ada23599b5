package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the
// database. Deletes and flag updates on absent ids are no-ops and do NOT
// return it.
var ErrNotFound = errors.New("not found")

// ErrUsernameTaken is returned by user creation when the username is
// already in use.
var ErrUsernameTaken = errors.New("username already taken")
