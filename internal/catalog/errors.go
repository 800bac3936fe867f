package catalog

import "errors"

var (
	// ErrNotFound indicates the requested record doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a unique constraint violation on full_path.
	ErrDuplicate = errors.New("duplicate entry")
)
