package options

import (
	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/l10n-migrate/config"
	"github.com/napalu/l10n-migrate/errors"
	"github.com/napalu/l10n-migrate/locales"
	"github.com/napalu/l10n-migrate/localizable"
	"github.com/napalu/l10n-migrate/rewrite"
	"github.com/napalu/l10n-migrate/util"
	"golang.org/x/text/language"
)

// AppConfig main application configuration
type AppConfig struct {
	ProjectPath string          `goopt:"pos:0;required:true;desc:Path to the Swift project directory;descKey:app.app_config.project_path_desc"`
	Localizable string          `goopt:"short:l;desc:Path to Localizable.strings;descKey:app.app_config.localizable_desc"`
	DryRun      bool            `goopt:"short:d;desc:Show what would be changed without making changes;descKey:app.app_config.dry_run_desc"`
	Verbose     bool            `goopt:"short:v;desc:Show detailed output;descKey:app.app_config.verbose_desc"`
	Namespace   string          `goopt:"short:n;desc:Namespace of the generated constants;descKey:app.app_config.namespace_desc"`
	Extension   string          `goopt:"short:e;desc:Extension of source files to rewrite;descKey:app.app_config.extension_desc"`
	Function    string          `goopt:"short:f;desc:Name of the localization function to replace;descKey:app.app_config.function_desc"`
	Naming      string          `goopt:"desc:Identifier naming style (swiftgen or camel);descKey:app.app_config.naming_desc"`
	Exclude     []string        `goopt:"short:x;desc:Additional directory names to skip while scanning;descKey:app.app_config.exclude_desc"`
	Jobs        int             `goopt:"short:j;desc:Number of files to rewrite in parallel;descKey:app.app_config.jobs_desc"`
	BackupDir   string          `goopt:"short:b;desc:Directory for backups of rewritten files;descKey:app.app_config.backup_dir_desc"`
	Diff        bool            `goopt:"desc:Print a unified diff for every changed file;descKey:app.app_config.diff_desc"`
	Config      string          `goopt:"short:c;desc:TOML file with project settings;descKey:app.app_config.config_desc"`
	Language    string          `goopt:"desc:Language for output (en, de, fr);descKey:app.app_config.language_desc"`
	Help        bool            `goopt:"short:h;desc:Show help;descKey:app.app_config.help_desc"`
	SearchPaths []string        `ignore:"true"` // Localizable.strings locations probed when none is given
	TR          i18n.Translator `ignore:"true"` // Translator for messages
}

// NewParser binds cfg to a new command line parser using kebab-case flag names and
// the messages of bundle
func NewParser(cfg *AppConfig, bundle *i18n.Bundle) (*goopt.Parser, error) {
	parser, err := goopt.NewParserFromStruct(cfg,
		goopt.WithFlagNameConverter(goopt.ToKebabCase),
		goopt.WithUserBundle(bundle))
	if err != nil {
		return nil, err
	}

	cfg.TR = bundle

	return parser, nil
}

// ApplyFile fills every setting that was not given on the command line from f.
// Exclusions of both sources are combined.
func (c *AppConfig) ApplyFile(f *config.File) {
	if f == nil {
		return
	}
	c.Namespace = firstNonEmpty(c.Namespace, f.Namespace)
	c.Extension = firstNonEmpty(c.Extension, f.Extension)
	c.Function = firstNonEmpty(c.Function, f.Function)
	c.Naming = firstNonEmpty(c.Naming, f.Naming)
	c.Localizable = firstNonEmpty(c.Localizable, f.Localizable)
	c.BackupDir = firstNonEmpty(c.BackupDir, f.BackupDir)
	if c.Jobs == 0 {
		c.Jobs = f.Jobs
	}
	if len(c.SearchPaths) == 0 {
		c.SearchPaths = f.SearchPaths
	}
	c.Exclude = append(c.Exclude, f.Exclude...)
}

// ApplyDefaults sets built-in defaults for every setting that is still empty
func (c *AppConfig) ApplyDefaults() {
	c.Namespace = firstNonEmpty(c.Namespace, localizable.DefaultNamespace)
	c.Extension = firstNonEmpty(c.Extension, util.DefaultSourceExtension)
	c.Function = firstNonEmpty(c.Function, rewrite.DefaultFunction)
	c.Naming = firstNonEmpty(c.Naming, util.NamingSwiftGen)
	if c.Jobs == 0 {
		c.Jobs = 1
	}
	if len(c.SearchPaths) == 0 {
		c.SearchPaths = localizable.DefaultSearchPaths
	}
}

// Validate checks settings the parser cannot check by itself
func (c *AppConfig) Validate() error {
	if _, ok := util.NamingStyle(c.Naming); !ok {
		return errors.ErrInvalidNaming.WithArgs(c.Naming)
	}
	if c.Jobs < 1 {
		return errors.ErrInvalidJobs.WithArgs(c.Jobs)
	}
	if c.Language != "" && locales.ParseLanguage(c.Language) == language.Und {
		return errors.ErrUnknownLanguageCode.WithArgs(c.Language)
	}
	return nil
}

// NamingFunc returns the identifier transform selected by Naming
func (c *AppConfig) NamingFunc() util.NamingFunc {
	naming, ok := util.NamingStyle(c.Naming)
	if !ok {
		return util.KeyToIdentifier
	}
	return naming
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
