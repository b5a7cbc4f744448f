// Package paths provides sudo-aware path resolution for jellyrename.
//
// When running with sudo, these functions correctly resolve paths to the
// original user's directories (via SUDO_USER) instead of root's directories.
package paths

import (
	"os"
	"os/user"
	"path/filepath"
)

// UserHomeDir returns the home directory of the actual user.
// If running with sudo, returns the SUDO_USER's home directory, not root's.
func UserHomeDir() (string, error) {
	// Check SUDO_USER first (running with sudo)
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		u, err := user.Lookup(sudoUser)
		if err == nil {
			return u.HomeDir, nil
		}
		// Fall through if lookup fails
	}

	// Fallback to current user
	return os.UserHomeDir()
}

// UserConfigDir returns the config directory of the actual user.
// If running with sudo, returns the SUDO_USER's config directory, not root's.
// On Linux this is typically ~/.config
func UserConfigDir() (string, error) {
	homeDir, err := UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config"), nil
}

// AppDir returns the jellyrename config directory.
// This is ~/.config/jellyrename for the actual user.
func AppDir() (string, error) {
	configDir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "jellyrename"), nil
}

// ConfigPath returns the path to the jellyrename config file.
// This is ~/.config/jellyrename/config.toml for the actual user.
func ConfigPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the default log file path.
// This is ~/.config/jellyrename/logs/jellyrename.log for the actual user.
func LogPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", "jellyrename.log"), nil
}
