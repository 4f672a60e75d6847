// Package appdir resolves per-user directories for the application.
package appdir

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppInfo identifies the application to the OS directory layout.
type AppInfo struct {
	Name   string
	Author string
}

// DataFileName is the default name of the history file.
const DataFileName = "data"

// App returns the application identity. It is fixed for the life of the process.
func App() AppInfo {
	return AppInfo{Name: "fii", Author: "na"}
}

// DataFile returns the path of name inside the user data directory, creating parent directories.
func DataFile(name string) (string, error) {
	path, err := xdg.DataFile(filepath.Join(App().Name, name))
	if err != nil {
		return "", fmt.Errorf("resolve data file: %w", err)
	}
	return path, nil
}

// ConfigFile returns the path of name inside the user config directory. Nothing is created.
func ConfigFile(name string) string {
	return filepath.Join(xdg.ConfigHome, App().Name, name)
}
