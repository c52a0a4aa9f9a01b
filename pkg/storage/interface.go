// Package storage defines the persistence interfaces of the recipe service.
// Concrete backends (pkg/storage/postgres) implement them; services only
// depend on these interfaces so they can be tested against mocks.
//
//go:generate mockgen -destination=mock/mockstorage.go -package mockstorage recipe/pkg/storage AllStorage,Storage,TxStorage
package storage

import "context"

// AllStorage is the composite of every domain storage capability.
type AllStorage interface {
	UserStorage
	RecipeStorage
	TagStorage
	IngredientStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction.
// Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional storage handle that can start transactions.
type Storage interface {
	AllStorage

	// Ping checks that the database accepts queries. Errors caused by a
	// database that is not reachable yet are tagged with serrors.ErrUnavailable.
	Ping(ctx context.Context) error
	// Close releases the underlying connection pool.
	Close() error
	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
