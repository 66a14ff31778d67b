package postgres

import (
	"context"

	"gorm.io/gorm"

	"kioskhub/internal/adapters/out/postgres/catalogrepo"
	"kioskhub/internal/adapters/out/postgres/orderrepo"
	"kioskhub/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances against the shared
// pool. Each business operation gets a fresh instance with its own
// transaction state; Create fails while the pool is released for
// maintenance, which keeps the disconnection error distinguishable.
type GormUnitOfWorkFactory struct {
	pool *Pool
}

// NewGormUnitOfWorkFactory creates a factory bound to the shared pool.
func NewGormUnitOfWorkFactory(pool *Pool) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{pool: pool}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() (ports.UnitOfWork, error) {
	db, err := f.pool.DB()
	if err != nil {
		return nil, err
	}
	return &GormUnitOfWork{db: db}, nil
}

// GormUnitOfWork coordinates one database transaction across the order and
// catalog repositories. Repositories obtained before Begin run on the plain
// connection; after Begin they run inside the transaction until Commit or
// Rollback closes it.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction. Multiple calls on the same
// instance are safe and do not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}
	return nil
}

// Commit finalizes the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Rolling back with no active
// transaction is a no-op so handlers can always defer it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the plain connection before Begin.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.handle())
}

// CatalogRepository returns a catalog repository bound to the current
// transaction, or to the plain connection before Begin.
func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.handle())
}

func (uow *GormUnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
