package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for BuildMaster.
type Paths struct {
	// ConfigFile is the path to the config file (~/.buildmaster/config.yaml).
	ConfigFile string

	// StateDir is where session and build records live (~/.buildmaster/state).
	StateDir string

	// HomeDir is the BuildMaster home directory (~/.buildmaster).
	HomeDir string
}

// DefaultPaths returns the default paths for BuildMaster.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	bmHome := filepath.Join(homeDir, ".buildmaster")

	return &Paths{
		ConfigFile: filepath.Join(bmHome, "config.yaml"),
		StateDir:   filepath.Join(bmHome, "state"),
		HomeDir:    bmHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If BUILDMASTER_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("BUILDMASTER_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

// GetStateDir returns the state directory path.
// If BUILDMASTER_STATE_DIR is set, it takes precedence.
func GetStateDir() (string, error) {
	if envPath := os.Getenv("BUILDMASTER_STATE_DIR"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.StateDir, nil
}

// EnsureHomeDir creates the BuildMaster home directory if it doesn't
// exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}
	return os.MkdirAll(paths.HomeDir, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username form is not supported, return as-is.
	return path, nil
}
