package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command. Create fails when the
// backing connection pool has been released for maintenance.
type UnitOfWorkFactory interface {
	Create() (UnitOfWork, error)
}

// UnitOfWork represents a business transaction boundary. Client code manages
// the transaction lifecycle explicitly; repositories obtained from the unit
// of work run inside the transaction once Begin has been called.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction, or to the plain connection before Begin.
	OrderRepository() OrderRepository

	// CatalogRepository returns a CatalogRepository bound to the current
	// transaction, or to the plain connection before Begin.
	CatalogRepository() CatalogRepository
}
