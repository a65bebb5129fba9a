package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type widget struct {
	ID        uint
	Name      string
	DeletedAt gorm.DeletedAt
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&widget{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func TestNewBaseStoresConnection(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)

	if base.db != db {
		t.Fatalf("expected base db to match provided connection")
	}
}

func TestBaseDB_BindsContext(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")
	withCtx := base.DB(ctx)

	if withCtx == nil || withCtx.Statement == nil {
		t.Fatalf("expected statement created after WithContext")
	}
	if withCtx.Statement.Context != ctx {
		t.Fatalf("expected context to flow through, got %v", withCtx.Statement.Context)
	}

	withoutCtx := base.DB(nil)
	if withoutCtx != db {
		t.Fatalf("expected nil context to return raw connection")
	}
}

func TestBaseLockedReadsOnSQLite(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)
	ctx := context.Background()

	if err := db.Create(&widget{Name: "a"}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	var got widget
	if err := base.Locked(ctx).First(&got).Error; err != nil {
		t.Fatalf("locked read: %v", err)
	}
	if got.Name != "a" {
		t.Fatalf("unexpected row %+v", got)
	}
}

func TestBaseUnscopedSeesSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)
	ctx := context.Background()

	w := widget{Name: "gone"}
	if err := db.Create(&w).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := db.Delete(&w).Error; err != nil {
		t.Fatalf("delete: %v", err)
	}

	var live, all int64
	if err := base.DB(ctx).Model(&widget{}).Count(&live).Error; err != nil {
		t.Fatalf("count live: %v", err)
	}
	if err := base.Unscoped(ctx).Model(&widget{}).Count(&all).Error; err != nil {
		t.Fatalf("count all: %v", err)
	}
	if live != 0 || all != 1 {
		t.Fatalf("expected 0 live / 1 total, got %d / %d", live, all)
	}
}
