package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLatestBackupAgeEmptyDir(t *testing.T) {
	dir := t.TempDir()
	if _, ok := LatestBackupAge(dir); ok {
		t.Error("expected no backup age for empty directory")
	}
}

func TestLatestBackupAgeMissingDir(t *testing.T) {
	if _, ok := LatestBackupAge(filepath.Join(t.TempDir(), "missing")); ok {
		t.Error("expected no backup age for missing directory")
	}
}

func TestLatestBackupAgePicksNewestJSON(t *testing.T) {
	dir := t.TempDir()

	old := filepath.Join(dir, "backup-2025-01-05.json")
	if err := os.WriteFile(old, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	stale := time.Now().Add(-72 * time.Hour)
	if err := os.Chtimes(old, stale, stale); err != nil {
		t.Fatal(err)
	}

	// Non-JSON files are ignored even when newer.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	age, ok := LatestBackupAge(dir)
	if !ok {
		t.Fatal("expected a backup age")
	}
	if age < 71*time.Hour || age > 73*time.Hour {
		t.Errorf("age = %v, want about 72h", age)
	}

	fresh := filepath.Join(dir, "backup-2025-01-12.json")
	if err := os.WriteFile(fresh, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	age, ok = LatestBackupAge(dir)
	if !ok {
		t.Fatal("expected a backup age")
	}
	if age > time.Minute {
		t.Errorf("age = %v, want near zero for fresh backup", age)
	}
}
