package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Base is embedded by domain repositories. It carries the connection the
// repository was built with, which is a transaction handle when the
// repository was created inside db.WithTx.
type Base struct {
	db *gorm.DB
}

func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the connection bound to ctx. A nil ctx returns the raw handle.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Locked returns a query that takes row locks (SELECT ... FOR UPDATE) on the
// rows it reads. Dialects without row locks, such as sqlite, drop the clause.
func (b Base) Locked(ctx context.Context) *gorm.DB {
	return b.DB(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// Unscoped includes soft-deleted rows.
func (b Base) Unscoped(ctx context.Context) *gorm.DB {
	return b.DB(ctx).Unscoped()
}
