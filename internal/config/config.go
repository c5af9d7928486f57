// Package config resolves the local storage locations for autolog.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// GetDataDir resolves the base directory for all logbook storage. It
// checks AUTOLOG_DIR first, then the XDG data home, and finally falls
// back to the user's home directory.
func GetDataDir() string {
	if explicit := os.Getenv("AUTOLOG_DIR"); explicit != "" {
		return explicit
	}

	xdg.Reload()

	dataHome := xdg.DataHome
	if dataHome == "" {
		home := xdg.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), "autolog")
			}
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "autolog")
}

// GetDBPath returns the absolute path to the SQLite database file.
func GetDBPath() string {
	return filepath.Join(GetDataDir(), "logbook.db")
}

// GetBackupPath returns the default location for backup bundles.
func GetBackupPath() string {
	return filepath.Join(GetDataDir(), "backup.json")
}
