package rewrite

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/napalu/l10n-migrate/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// KeyLookup resolves a localization key to the reference expression replacing it
type KeyLookup interface {
	Lookup(key string) (string, bool)
}

// Result holds the outcome of rewriting one piece of content
type Result struct {
	// Replacements is the number of calls replaced by a reference
	Replacements int
	// Unmatched holds the distinct keys of recognized calls without mapping, sorted
	Unmatched []string
}

// UnmatchedCount returns the number of distinct unmatched keys
func (r Result) UnmatchedCount() int {
	return len(r.Unmatched)
}

// FileResult holds the outcome of rewriting one file
type FileResult struct {
	Result
	Path string
	// Modified is true when the rewritten content differs from the file content
	Modified bool
	// Written is true when the rewritten content was saved
	Written bool
	// Diff is a unified diff of the change, only set when diffs are enabled
	Diff string
}

// Rewriter replaces recognized localization calls whose key is known with the
// corresponding reference
type Rewriter struct {
	keys      KeyLookup
	patterns  []Pattern
	dryRun    bool
	diff      bool
	root      string
	backupDir string
	stamp     string
}

// Option configures a Rewriter
type Option func(*Rewriter)

// WithPatterns replaces the default call patterns
func WithPatterns(patterns ...Pattern) Option {
	return func(rw *Rewriter) {
		rw.patterns = patterns
	}
}

// WithDryRun disables writing rewritten files
func WithDryRun(dryRun bool) Option {
	return func(rw *Rewriter) {
		rw.dryRun = dryRun
	}
}

// WithDiff enables unified diffs in file results
func WithDiff(diff bool) Option {
	return func(rw *Rewriter) {
		rw.diff = diff
	}
}

// WithRoot sets the project root used for backup locations and diff headers
func WithRoot(root string) Option {
	return func(rw *Rewriter) {
		rw.root = root
	}
}

// WithBackupDir saves the original of every rewritten file below dir before it is
// overwritten
func WithBackupDir(dir string) Option {
	return func(rw *Rewriter) {
		rw.backupDir = dir
	}
}

// New creates a Rewriter resolving keys with keys
func New(keys KeyLookup, opts ...Option) *Rewriter {
	rw := &Rewriter{
		keys:     keys,
		patterns: DefaultPatterns(DefaultFunction),
		stamp:    time.Now().Format("20060102_150405"),
	}
	for _, opt := range opts {
		opt(rw)
	}
	return rw
}

// Rewrite applies all patterns in order to content. Calls with a known key are
// replaced; all others are kept byte for byte and their key is recorded.
func (rw *Rewriter) Rewrite(content string) (string, Result) {
	var res Result
	unmatched := make(map[string]struct{})

	for _, p := range rw.patterns {
		content = replaceCalls(p.Regexp, content, func(call, key string) string {
			if ref, ok := rw.keys.Lookup(key); ok {
				res.Replacements++
				return ref
			}
			unmatched[key] = struct{}{}
			return call
		})
	}

	if len(unmatched) > 0 {
		res.Unmatched = make([]string, 0, len(unmatched))
		for key := range unmatched {
			res.Unmatched = append(res.Unmatched, key)
		}
		sort.Strings(res.Unmatched)
	}

	return content, res
}

// RewriteFile rewrites the file at path. The file is only written when its content
// changed and dry run is disabled. Files that are not valid UTF-8 are left alone
// and reported with errors.ErrNotText.
func (rw *Rewriter) RewriteFile(path string) (*FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrFailedToReadFile.WithArgs(path).Wrap(err)
	}
	if !utf8.Valid(data) {
		return nil, errors.ErrNotText.WithArgs(path)
	}

	original := string(data)
	rewritten, res := rw.Rewrite(original)

	fr := &FileResult{
		Result:   res,
		Path:     path,
		Modified: rewritten != original,
	}
	if !fr.Modified {
		return fr, nil
	}

	if rw.diff {
		fr.Diff = rw.unifiedDiff(path, original, rewritten)
	}
	if rw.dryRun {
		return fr, nil
	}

	if rw.backupDir != "" {
		if err := rw.createBackup(path, data); err != nil {
			return nil, errors.ErrFailedToBackup.WithArgs(path).Wrap(err)
		}
	}

	if err := os.WriteFile(path, []byte(rewritten), 0644); err != nil {
		return nil, errors.ErrFailedToWriteFile.WithArgs(path).Wrap(err)
	}
	fr.Written = true

	return fr, nil
}

// relPath returns path relative to the project root, or path itself when it is
// not below the root
func (rw *Rewriter) relPath(path string) string {
	if rw.root == "" {
		return path
	}
	rel, err := filepath.Rel(rw.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// createBackup stores content as <backupDir>/<timestamp>/<relative path>.orig. The
// suffix keeps backups out of later scans when the backup directory lives inside
// the project.
func (rw *Rewriter) createBackup(path string, content []byte) error {
	rel := rw.relPath(path)
	if filepath.IsAbs(rel) {
		rel = filepath.Base(path)
	}

	backupPath := filepath.Join(rw.backupDir, rw.stamp, rel+".orig")
	if err := os.MkdirAll(filepath.Dir(backupPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(backupPath, content, 0644)
}

func (rw *Rewriter) unifiedDiff(path, original, rewritten string) string {
	name := filepath.ToSlash(rw.relPath(path))
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(rewritten),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return diff
}
