package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when Begin is called on a transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrAlreadyExists is returned when a write violates a uniqueness constraint,
	// e.g. a second user with the same email or a duplicated tag name.
	ErrAlreadyExists = errors.New("already exists")
)
