package repository

import "errors"

// ErrNotFound is returned when a lookup for a single widget finds nothing.
// The service layer translates it into app_errors.ErrNotFound so callers never
// see driver errors such as sql.ErrNoRows or redis.Nil.
var ErrNotFound = errors.New("repository: not found")
