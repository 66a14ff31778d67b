// Package queries contains the read side of the backend. Query handlers
// bypass the domain aggregates and read the tables directly into response
// structs shaped for the HTTP surface.
package queries

import (
	"gorm.io/gorm"
)

// DBProvider hands query handlers the current database handle. It fails with
// errs.ErrDatabaseDisconnected while the pool is released for maintenance,
// which is why handlers resolve the handle per request instead of holding
// one.
type DBProvider interface {
	DB() (*gorm.DB, error)
}
