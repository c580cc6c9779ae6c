package options

import (
	stderrors "errors"
	"testing"

	"github.com/napalu/l10n-migrate/config"
	"github.com/napalu/l10n-migrate/errors"
	"github.com/napalu/l10n-migrate/locales"
	"github.com/napalu/l10n-migrate/localizable"
	"github.com/napalu/l10n-migrate/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args string) (*AppConfig, bool) {
	t.Helper()
	bundle, err := locales.NewBundle()
	require.NoError(t, err)

	cfg := &AppConfig{}
	parser, err := NewParser(cfg, bundle)
	require.NoError(t, err)

	return cfg, parser.ParseString(args)
}

func TestParseMinimal(t *testing.T) {
	cfg, ok := parse(t, "MyApp")
	require.True(t, ok)

	assert.Equal(t, "MyApp", cfg.ProjectPath)
	assert.Empty(t, cfg.Localizable)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 0, cfg.Jobs)
	assert.NotNil(t, cfg.TR)
}

func TestParseAllFlags(t *testing.T) {
	cfg, ok := parse(t, "MyApp -l App/Localizable.strings -d -v -n Strings -e .swift -f LocalizedString "+
		"--naming camel -x Vendor,Carthage -j 4 -b backups --diff -c project.toml --language de")
	require.True(t, ok)

	assert.Equal(t, "MyApp", cfg.ProjectPath)
	assert.Equal(t, "App/Localizable.strings", cfg.Localizable)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "Strings", cfg.Namespace)
	assert.Equal(t, ".swift", cfg.Extension)
	assert.Equal(t, "LocalizedString", cfg.Function)
	assert.Equal(t, "camel", cfg.Naming)
	assert.Equal(t, []string{"Vendor", "Carthage"}, cfg.Exclude)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "backups", cfg.BackupDir)
	assert.True(t, cfg.Diff)
	assert.Equal(t, "project.toml", cfg.Config)
	assert.Equal(t, "de", cfg.Language)
}

func TestParseLongFlags(t *testing.T) {
	cfg, ok := parse(t, "MyApp --localizable Localizable.strings --dry-run --verbose --backup-dir out")
	require.True(t, ok)

	assert.Equal(t, "Localizable.strings", cfg.Localizable)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "out", cfg.BackupDir)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args string
	}{
		{name: "missing project path", args: ""},
		{name: "jobs not a number", args: "MyApp -j many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parse(t, tt.args)
			assert.False(t, ok)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &AppConfig{ProjectPath: "MyApp"}
	cfg.ApplyDefaults()

	assert.Equal(t, localizable.DefaultNamespace, cfg.Namespace)
	assert.Equal(t, util.DefaultSourceExtension, cfg.Extension)
	assert.Equal(t, "NSLocalizedString", cfg.Function)
	assert.Equal(t, util.NamingSwiftGen, cfg.Naming)
	assert.Equal(t, 1, cfg.Jobs)
	assert.Equal(t, localizable.DefaultSearchPaths, cfg.SearchPaths)
	assert.NoError(t, cfg.Validate())
}

func TestApplyFilePrecedence(t *testing.T) {
	cfg := &AppConfig{
		ProjectPath: "MyApp",
		Namespace:   "FromFlag",
		Exclude:     []string{"Vendor"},
	}
	cfg.ApplyFile(&config.File{
		Namespace:   "FromFile",
		Naming:      "camel",
		Exclude:     []string{"Carthage"},
		SearchPaths: []string{"App/Localizable.strings"},
		Jobs:        3,
	})
	cfg.ApplyDefaults()

	assert.Equal(t, "FromFlag", cfg.Namespace)
	assert.Equal(t, "camel", cfg.Naming)
	assert.Equal(t, []string{"Vendor", "Carthage"}, cfg.Exclude)
	assert.Equal(t, []string{"App/Localizable.strings"}, cfg.SearchPaths)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, util.DefaultSourceExtension, cfg.Extension)

	cfg.ApplyFile(nil)
	assert.Equal(t, "FromFlag", cfg.Namespace)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *AppConfig)
		err    error
	}{
		{name: "defaults", modify: func(cfg *AppConfig) {}},
		{name: "camel naming", modify: func(cfg *AppConfig) { cfg.Naming = "camel" }},
		{name: "unknown naming", modify: func(cfg *AppConfig) { cfg.Naming = "pascal" }, err: errors.ErrInvalidNaming},
		{name: "negative jobs", modify: func(cfg *AppConfig) { cfg.Jobs = -2 }, err: errors.ErrInvalidJobs},
		{name: "known language", modify: func(cfg *AppConfig) { cfg.Language = "fr" }},
		{name: "unknown language", modify: func(cfg *AppConfig) { cfg.Language = "xx" }, err: errors.ErrUnknownLanguageCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &AppConfig{ProjectPath: "MyApp"}
			cfg.ApplyDefaults()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, tt.err))
		})
	}
}

func TestNamingFunc(t *testing.T) {
	cfg := &AppConfig{Naming: util.NamingSwiftGen}
	assert.Equal(t, "aBC", cfg.NamingFunc()("a_b_c"))

	cfg.Naming = util.NamingCamel
	assert.Equal(t, "aBC", cfg.NamingFunc()("a_b_c"))
	assert.Equal(t, "userName", cfg.NamingFunc()("user_name"))
}
