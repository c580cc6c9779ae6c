// Package migrate runs a complete migration of a project tree.
package migrate

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/l10n-migrate/config"
	"github.com/napalu/l10n-migrate/errors"
	"github.com/napalu/l10n-migrate/localizable"
	"github.com/napalu/l10n-migrate/messages"
	"github.com/napalu/l10n-migrate/options"
	"github.com/napalu/l10n-migrate/report"
	"github.com/napalu/l10n-migrate/rewrite"
	"github.com/napalu/l10n-migrate/util"
	"golang.org/x/sync/errgroup"
)

// Run migrates the project described by cfg and writes the report to out. cfg is
// completed with the project config file and the built-in defaults first.
func Run(ctx context.Context, cfg *options.AppConfig, tr i18n.Translator, out io.Writer, opts ...report.Option) (report.Summary, error) {
	rep := report.New(out, tr, append([]report.Option{report.WithVerbose(cfg.Verbose)}, opts...)...)

	if _, err := os.Stat(cfg.ProjectPath); err != nil {
		return report.Summary{}, errors.ErrProjectNotFound.WithArgs(cfg.ProjectPath)
	}

	if err := loadConfig(cfg, rep); err != nil {
		return report.Summary{}, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return report.Summary{}, err
	}

	keys, err := loadKeys(cfg, tr, rep)
	if err != nil {
		return report.Summary{}, err
	}

	files, err := util.FindSourceFiles(cfg.ProjectPath, cfg.Extension, cfg.Exclude...)
	if err != nil {
		return report.Summary{}, errors.ErrFailedToScan.WithArgs(cfg.ProjectPath).Wrap(err)
	}
	rep.Println(messages.Keys.App.Run.FoundFiles, len(files))

	if cfg.DryRun {
		rep.DryRunBanner()
	}

	rw := rewrite.New(keys,
		rewrite.WithPatterns(rewrite.DefaultPatterns(cfg.Function)...),
		rewrite.WithDryRun(cfg.DryRun),
		rewrite.WithDiff(cfg.Diff),
		rewrite.WithRoot(cfg.ProjectPath),
		rewrite.WithBackupDir(cfg.BackupDir))

	results, err := rewriteFiles(ctx, rw, files, cfg.Jobs)
	if err != nil {
		return report.Summary{}, err
	}

	for i, fr := range results {
		rel := relPath(cfg.ProjectPath, files[i])
		if fr == nil {
			slog.Warn(tr.T(messages.Keys.App.Warning.NotText, rel))
			rep.Skipped()
			continue
		}
		rep.File(rel, fr.Result)
		rep.Diff(fr.Diff)
	}

	rep.PrintSummary(cfg.DryRun)

	return rep.Summary(), nil
}

// loadConfig merges the explicit config file, or the default one from the project
// root when it exists, into cfg
func loadConfig(cfg *options.AppConfig, rep *report.Reporter) error {
	path := cfg.Config
	if path == "" {
		candidate := filepath.Join(cfg.ProjectPath, config.DefaultFileName)
		if info, err := os.Stat(candidate); err != nil || info.IsDir() {
			return nil
		}
		path = candidate
	}

	f, err := config.Load(path)
	if err != nil {
		return err
	}
	rep.Println(messages.Keys.App.Run.UsingConfig, path)
	cfg.ApplyFile(f)

	return nil
}

func loadKeys(cfg *options.AppConfig, tr i18n.Translator, rep *report.Reporter) (*localizable.KeyMap, error) {
	path, err := localizable.Locate(cfg.ProjectPath, cfg.Localizable, cfg.SearchPaths)
	if err != nil {
		return nil, err
	}
	rep.Println(messages.Keys.App.Run.UsingLocalizable, path)

	keys, err := localizable.NewLoader(tr, cfg.Namespace, cfg.NamingFunc()).Load(path)
	if err != nil {
		return nil, err
	}
	rep.Println(messages.Keys.App.Run.FoundKeys, keys.Len())
	if keys.Len() == 0 {
		return nil, errors.ErrNoKeys
	}

	return keys, nil
}

// rewriteFiles rewrites files with at most jobs files in flight. Results keep the
// order of files; files that are not text have a nil result. Any other error
// stops the run.
func rewriteFiles(ctx context.Context, rw *rewrite.Rewriter, files []string, jobs int) ([]*rewrite.FileResult, error) {
	results := make([]*rewrite.FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fr, err := rw.RewriteFile(path)
			if err != nil {
				if stderrors.Is(err, errors.ErrNotText) {
					return nil
				}
				return err
			}
			results[i] = fr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
