// Package storage archives games in a local BadgerDB key value store.
package storage

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "chesskit"

// DefaultDir returns the platform data directory for the archive.
// - macOS: ~/Library/Application Support/chesskit/archive/
// - Linux: ~/.local/share/chesskit/archive/
// - Windows: %LOCALAPPDATA%/chesskit/archive/
func DefaultDir() string {
	return filepath.Join(xdg.DataHome, appName, "archive")
}
