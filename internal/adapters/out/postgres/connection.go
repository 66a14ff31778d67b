// Package postgres provides the GORM-based persistence adapters: the
// maintenance-aware connection pool, the unit of work, and the repositories
// under it.
package postgres

import (
	"fmt"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kioskhub/internal/adapters/out/postgres/catalogrepo"
	"kioskhub/internal/adapters/out/postgres/orderrepo"
	"kioskhub/internal/pkg/errs"
)

// Config carries the connection settings for the shared pool.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

// DSN renders the config as a postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Pool wraps the shared GORM connection and its lifecycle. The maintenance
// switch releases and re-acquires the underlying connections through Close
// and Open; every data access path obtains the handle through DB, which
// fails with errs.ErrDatabaseDisconnected while the pool is released.
//
// The mutex guards only the handle swap. Queries already in flight when
// Close runs fail with the driver's "database is closed" error; the
// maintenance gate reclassifies those. Pool does not serialize the switch
// against in-flight work.
type Pool struct {
	cfg Config

	mu sync.RWMutex
	db *gorm.DB
}

// NewPool creates an unopened pool for the given config.
func NewPool(cfg Config) *Pool {
	return &Pool{cfg: cfg}
}

// Open establishes the GORM connection and applies the pool limits.
// Opening an already-open pool is a no-op.
func (p *Pool) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return nil
	}

	db, err := gorm.Open(postgres.Open(p.cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	if p.cfg.MaxConns > 0 {
		sqlDB.SetMaxOpenConns(p.cfg.MaxConns)
	}

	p.db = db
	return nil
}

// Close releases the underlying connections. Subsequent DB calls fail with
// errs.ErrDatabaseDisconnected until Open is called again. Closing an
// already-closed pool is a no-op.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}

	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}

	p.db = nil
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close connection pool: %w", err)
	}
	return nil
}

// DB returns the shared GORM handle, or errs.ErrDatabaseDisconnected while
// the pool is released for maintenance.
func (p *Pool) DB() (*gorm.DB, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.db == nil {
		return nil, errs.ErrDatabaseDisconnected
	}
	return p.db, nil
}

// Migrate creates or updates the schema for all persisted tables.
func (p *Pool) Migrate() error {
	db, err := p.DB()
	if err != nil {
		return err
	}
	return db.AutoMigrate(
		&catalogrepo.ItemDTO{},
		&catalogrepo.KioskDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
