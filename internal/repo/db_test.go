package repo

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLiteCreatesFileAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	if !db.Migrator().HasTable("contact_messages") {
		t.Fatal("contact_messages table missing after migration")
	}
}

func TestOpenSQLiteMissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does", "not", "exist", "blog.db")
	if _, err := OpenSQLite(path); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestEnableTracing(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "traced.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := EnableTracing(db); err != nil {
		t.Fatalf("EnableTracing: %v", err)
	}
}
