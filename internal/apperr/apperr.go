// Package apperr holds the error taxonomy handlers translate into HTTP
// statuses. Services wrap these sentinels with context; handlers match
// with errors.Is.
package apperr

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
