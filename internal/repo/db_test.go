package repo

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

// newTestDB opens a throwaway SQLite database in a temp dir and migrates the
// full schema. Each test gets its own file so tests stay independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	if _, err := OpenSQLite(filepath.Join(t.TempDir(), "nope", "x.db")); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

// OpenSQLite alone yields an empty database; every boot path must run
// AutoMigrate before serving queries.
func TestOpenSQLite_RequiresMigrationBeforeQueries(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "fresh.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	ctx := context.Background()

	if _, err := EnsureEmployee(ctx, db, "E100"); err == nil {
		t.Fatalf("expected query against unmigrated database to fail")
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	if _, err := EnsureEmployee(ctx, db, "E100"); err != nil {
		t.Fatalf("EnsureEmployee after migration: %v", err)
	}
}

func TestAutoMigrate_CreatesAllTables(t *testing.T) {
	db := newTestDB(t)
	for _, table := range []string{"employees", "tasks", "chat_messages", "applications"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %q missing after migration", table)
		}
	}
}
