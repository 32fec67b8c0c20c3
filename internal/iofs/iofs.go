// Package iofs prepares the application's directories and seed
// configuration file on the local file system.
package iofs

import (
	"os"

	"github.com/tirthatlas/tirthdb/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# TirthDB configuration.
#
# Any field here can be overridden with a TIRTHDB_* environment
# variable (nested fields use underscores: database.path becomes
# TIRTHDB_DATABASE_PATH) or with a CLI flag.

`

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes a config.yaml with the default settings
// unless one already exists. The file is generated from the live
// defaults, so it never drifts from the code.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	doc, err := yaml.Marshal(config.New())
	if err != nil {
		return CopyFileError(configPath, err)
	}
	doc = append([]byte(configHeader), doc...)

	if err := os.WriteFile(configPath, doc, 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
