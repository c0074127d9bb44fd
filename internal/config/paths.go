// ABOUTME: Standard filesystem paths for termwalk configuration
// ABOUTME: Resolves ~/.termwalk/ and the default config.yaml inside it

package config

import (
	"os"
	"path/filepath"
)

const globalDirName = ".termwalk"

// GlobalDir returns the user-global config directory (~/.termwalk/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// DefaultFile returns the path of the config file read when none is given.
func DefaultFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}
