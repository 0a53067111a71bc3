package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "linkpeek"
	configName   = "config.toml"
	databaseName = "linkpeek.sqlite"

	// homeEnv points every linkpeek directory at one root, for sandboxes and tests.
	homeEnv = "LINKPEEK_HOME"
)

// Paths are the per-user linkpeek directories.
type Paths struct {
	Config string
	Data   string
	State  string
}

// ResolvePaths follows the XDG base directories unless LINKPEEK_HOME is set.
func ResolvePaths() (Paths, error) {
	if root := os.Getenv(homeEnv); root != "" {
		return Paths{Config: root, Data: root, State: root}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, err
	}
	under := func(env string, fallback ...string) string {
		base := os.Getenv(env)
		if base == "" {
			base = filepath.Join(append([]string{home}, fallback...)...)
		}
		return filepath.Join(base, appName)
	}
	return Paths{
		Config: under("XDG_CONFIG_HOME", ".config"),
		Data:   under("XDG_DATA_HOME", ".local", "share"),
		State:  under("XDG_STATE_HOME", ".local", "state"),
	}, nil
}

func resolve(pick func(Paths) string) (string, error) {
	p, err := ResolvePaths()
	if err != nil {
		return "", err
	}
	return pick(p), nil
}

func GetConfigDir() (string, error) {
	return resolve(func(p Paths) string { return p.Config })
}

func GetConfigFile() (string, error) {
	return resolve(func(p Paths) string { return filepath.Join(p.Config, configName) })
}

func GetDatabaseFile() (string, error) {
	return resolve(func(p Paths) string { return filepath.Join(p.Data, databaseName) })
}

func GetLogDir() (string, error) {
	return resolve(func(p Paths) string { return filepath.Join(p.State, "logs") })
}
