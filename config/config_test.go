package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/napalu/l10n-migrate/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
namespace = "Strings"
extension = ".swift"
function = "NSLocalizedString"
naming = "camel"
localizable = "App/Resources/Localizable.strings"
exclude = ["Vendor", "Carthage"]
search_paths = ["App/en.lproj/Localizable.strings"]
jobs = 4
backup_dir = "/tmp/backups"
`)

	f, err := Load(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, &File{
		Namespace:   "Strings",
		Extension:   ".swift",
		Function:    "NSLocalizedString",
		Naming:      "camel",
		Localizable: filepath.Join(dir, "App", "Resources", "Localizable.strings"),
		Exclude:     []string{"Vendor", "Carthage"},
		SearchPaths: []string{"App/en.lproj/Localizable.strings"},
		Jobs:        4,
		BackupDir:   "/tmp/backups",
	}, f)
}

func TestLoadEmpty(t *testing.T) {
	f, err := Load(writeConfig(t, "# nothing configured\n"))
	require.NoError(t, err)

	assert.Equal(t, &File{}, f)
}

func TestLoadUnknownKeyIsIgnored(t *testing.T) {
	f, err := Load(writeConfig(t, "namespace = \"L10n\"\ncolour = true\n"))
	require.NoError(t, err)

	assert.Equal(t, "L10n", f.Namespace)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.toml") },
		},
		{
			name: "invalid syntax",
			path: func(t *testing.T) string { return writeConfig(t, "namespace = \n") },
		},
		{
			name: "wrong type",
			path: func(t *testing.T) string { return writeConfig(t, "jobs = \"many\"\n") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Load(tt.path(t))
			assert.Nil(t, f)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrFailedToLoadConfig))
		})
	}
}
