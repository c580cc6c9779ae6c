// Package report prints the console report of a migration run.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/l10n-migrate/messages"
	"github.com/napalu/l10n-migrate/rewrite"
)

const indent = "  "

// Summary aggregates the outcome of a run
type Summary struct {
	FilesProcessed    int
	FilesModified     int
	TotalReplacements int
	TotalUnmatched    int
}

// Reporter writes translated report lines and keeps the run totals
type Reporter struct {
	out     io.Writer
	tr      i18n.Translator
	verbose bool
	color   bool
	summary Summary
}

// Option configures a Reporter
type Option func(*Reporter)

// WithVerbose also reports files that only have unmatched keys
func WithVerbose(verbose bool) Option {
	return func(r *Reporter) {
		r.verbose = verbose
	}
}

// WithColor enables ANSI colors
func WithColor(color bool) Option {
	return func(r *Reporter) {
		r.color = color
	}
}

// New creates a Reporter writing to out
func New(out io.Writer, tr i18n.Translator, opts ...Option) *Reporter {
	r := &Reporter{out: out, tr: tr}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Println prints the translation of key
func (r *Reporter) Println(key string, args ...interface{}) {
	fmt.Fprintln(r.out, r.tr.T(key, args...))
}

// DryRunBanner announces that no file will be written
func (r *Reporter) DryRunBanner() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.yellow(r.tr.T(messages.Keys.App.Run.DryRunMode)))
}

// File records the result of one processed file. A line is printed when the file had
// replacements, or in verbose mode when it had unmatched keys.
func (r *Reporter) File(relPath string, res rewrite.Result) {
	r.summary.FilesProcessed++
	r.summary.TotalReplacements += res.Replacements
	r.summary.TotalUnmatched += res.UnmatchedCount()
	if res.Replacements > 0 {
		r.summary.FilesModified++
	}

	if res.Replacements == 0 && (!r.verbose || res.UnmatchedCount() == 0) {
		return
	}

	line := r.tr.T(messages.Keys.App.Report.FileReplacements, relPath, res.Replacements)
	if res.Replacements > 0 {
		line = r.green(line)
	}
	if res.UnmatchedCount() > 0 {
		line += r.yellow(r.tr.T(messages.Keys.App.Report.FileUnmatched, res.UnmatchedCount()))
	}
	fmt.Fprintln(r.out, line)
}

// Skipped records a file that could not be processed
func (r *Reporter) Skipped() {
	r.summary.FilesProcessed++
}

// Diff prints a unified diff
func (r *Reporter) Diff(diff string) {
	if diff == "" {
		return
	}
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		fmt.Fprint(r.out, r.colorDiffLine(strings.TrimSuffix(line, "\n")), "\n")
	}
}

// Summary returns the totals recorded so far
func (r *Reporter) Summary() Summary {
	return r.summary
}

// PrintSummary prints the run totals
func (r *Reporter) PrintSummary(dryRun bool) {
	s := r.summary
	keys := messages.Keys.App.Report

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.bold(r.tr.T(keys.Summary)))
	fmt.Fprintln(r.out, indent+r.tr.T(keys.FilesProcessed, s.FilesProcessed))
	fmt.Fprintln(r.out, indent+r.tr.T(keys.FilesModified, s.FilesModified))
	fmt.Fprintln(r.out, indent+r.tr.T(keys.TotalReplacements, s.TotalReplacements))
	if s.TotalUnmatched > 0 {
		fmt.Fprintln(r.out, indent+r.yellow(r.tr.T(keys.UnmatchedKeys, s.TotalUnmatched)))
		fmt.Fprintln(r.out, indent+r.tr.T(keys.UnmatchedHint))
	}

	if dryRun {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.yellow(r.tr.T(keys.DryRunHint)))
	}
}
