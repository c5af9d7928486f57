package config

import (
	"path/filepath"
	"testing"
)

func TestGetDataDirWithExplicitEnv(t *testing.T) {
	tmpDir := t.TempDir()
	customDir := filepath.Join(tmpDir, "custom")

	t.Setenv("AUTOLOG_DIR", customDir)
	t.Setenv("XDG_DATA_HOME", "")

	got := GetDataDir()
	if got != customDir {
		t.Fatalf("expected %q, got %q", customDir, got)
	}
}

func TestGetDataDirFallsBackToXDG(t *testing.T) {
	tmpDir := t.TempDir()
	xdgDir := filepath.Join(tmpDir, "xdg")

	t.Setenv("AUTOLOG_DIR", "")
	t.Setenv("XDG_DATA_HOME", xdgDir)

	got := GetDataDir()
	want := filepath.Join(xdgDir, "autolog")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestGetDBAndBackupPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("AUTOLOG_DIR", tmpDir)

	if got, want := GetDBPath(), filepath.Join(tmpDir, "logbook.db"); got != want {
		t.Fatalf("GetDBPath expected %q, got %q", want, got)
	}

	if got, want := GetBackupPath(), filepath.Join(tmpDir, "backup.json"); got != want {
		t.Fatalf("GetBackupPath expected %q, got %q", want, got)
	}
}
