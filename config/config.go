// Package config reads the optional TOML project file.
package config

import (
	"log/slog"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/napalu/l10n-migrate/errors"
)

// DefaultFileName is looked up in the project root when no config file is given
const DefaultFileName = ".l10n-migrate.toml"

// File holds the settings of a project config file. Empty fields leave the
// corresponding setting untouched.
type File struct {
	Namespace   string   `toml:"namespace"`
	Extension   string   `toml:"extension"`
	Function    string   `toml:"function"`
	Naming      string   `toml:"naming"`
	Localizable string   `toml:"localizable"`
	Exclude     []string `toml:"exclude"`
	SearchPaths []string `toml:"search_paths"`
	Jobs        int      `toml:"jobs"`
	BackupDir   string   `toml:"backup_dir"`
}

// Load decodes the file at path. Relative localizable and backup_dir entries are
// resolved against the directory of the file; search_paths stay relative to the
// project.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errors.ErrFailedToLoadConfig.WithArgs(path).Wrap(err)
	}

	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "file", path, "key", key.String())
	}

	dir := filepath.Dir(path)
	f.Localizable = resolve(dir, f.Localizable)
	f.BackupDir = resolve(dir, f.BackupDir)

	return &f, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
