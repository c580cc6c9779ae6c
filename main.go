package main

//go:generate go run github.com/napalu/goopt/v2/cmd/goopt-i18n-gen -i "locales/json/*.json" validate -s "options/*.go" -g
//go:generate go run github.com/napalu/goopt/v2/cmd/goopt-i18n-gen -i "locales/json/*.json" generate -o messages/messages.go -p messages

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/l10n-migrate/errors"
	"github.com/napalu/l10n-migrate/locales"
	"github.com/napalu/l10n-migrate/logging"
	"github.com/napalu/l10n-migrate/messages"
	"github.com/napalu/l10n-migrate/migrate"
	"github.com/napalu/l10n-migrate/options"
	"github.com/napalu/l10n-migrate/report"
	"github.com/napalu/l10n-migrate/util"
	"golang.org/x/text/language"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Create i18n bundle
	bundle, err := locales.NewBundle()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create i18n bundle: %v\n", err)
		return 1
	}

	cfg := &options.AppConfig{}
	parser, err := options.NewParser(cfg, bundle)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create parser: %v\n", err)
		return 1
	}

	// Parse command line arguments
	success := parser.Parse(args)

	// Handle language switching
	if cfg.Language != "" && cfg.Language != bundle.GetDefaultLanguage().String() {
		lang := locales.ParseLanguage(cfg.Language)
		if lang != language.Und {
			bundle.SetDefaultLanguage(lang)
			// update goopt system bundle (important for goopt error and message translations)
			i18n.Default().SetDefaultLanguage(lang)
		}
	}

	logging.Setup(stderr, cfg.Verbose, util.IsTerminal(stderr))

	if cfg.Help {
		parser.PrintUsageWithGroups(stdout)
		return 0
	}

	if !success {
		for _, err := range parser.GetErrors() {
			fmt.Fprintln(stderr, bundle.T(messages.Keys.App.Error.ParseError, err))
			fmt.Fprintln(stderr)
		}
		parser.PrintUsageWithGroups(stderr)
		return 1
	}

	if _, err := migrate.Run(ctx, cfg, bundle, stdout, report.WithColor(util.IsTerminal(stdout))); err != nil {
		fmt.Fprintln(stderr, bundle.T(messages.Keys.App.Error.ParseError, errors.Translate(bundle, err)))
		return 1
	}

	return 0
}
