package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user XDG directories.
const AppName = "skillmatrix"

// Paths contains commonly used file paths.
type Paths struct {
	ConfigDir  string // $XDG_CONFIG_HOME/skillmatrix
	ConfigFile string // config.yaml inside ConfigDir
	LogDir     string // $XDG_STATE_HOME/skillmatrix
}

// GetPaths returns all commonly used paths based on the XDG base directories.
func GetPaths() Paths {
	configDir := filepath.Join(xdg.ConfigHome, AppName)
	return Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		LogDir:     filepath.Join(xdg.StateHome, AppName),
	}
}
