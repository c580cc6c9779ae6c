package localizable

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/l10n-migrate/errors"
	"github.com/napalu/l10n-migrate/messages"
	"github.com/napalu/l10n-migrate/util"
)

// DefaultSearchPaths are probed in order, relative to the project root, when no
// resource file is given explicitly
var DefaultSearchPaths = []string{
	filepath.Join("Resources", "Localizable.strings"),
	"Localizable.strings",
	filepath.Join("Supporting Files", "Localizable.strings"),
}

// Loader builds key maps from resource files
type Loader struct {
	tr        i18n.Translator
	namespace string
	naming    util.NamingFunc
}

// NewLoader creates a loader emitting references in namespace using naming.
// Empty values select DefaultNamespace and util.KeyToIdentifier.
func NewLoader(tr i18n.Translator, namespace string, naming util.NamingFunc) *Loader {
	return &Loader{
		tr:        tr,
		namespace: namespace,
		naming:    naming,
	}
}

// Load reads the resource file at path. A missing file is not an error: a warning
// is logged and an empty key map is returned.
func (l *Loader) Load(path string) (*KeyMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			slog.Warn(l.tr.T(messages.Keys.App.Warning.LocalizableMissing, path))
			return BuildKeyMap(nil, l.namespace, l.naming), nil
		}
		return nil, errors.ErrFailedToReadFile.WithArgs(path).Wrap(err)
	}

	content, err := Decode(data)
	if err != nil {
		return nil, errors.ErrFailedToDecode.WithArgs(path).Wrap(err)
	}

	keyMap := BuildKeyMap(ParseKeys(content), l.namespace, l.naming)
	slog.Debug("parsed resource file", "path", path, "keys", keyMap.Len())

	return keyMap, nil
}

// Locate returns the resource file to use for projectPath. An explicit path is
// returned as is. Otherwise searchPaths (DefaultSearchPaths when empty) are probed
// relative to projectPath and the first existing file wins.
func Locate(projectPath, explicit string, searchPaths []string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if len(searchPaths) == 0 {
		searchPaths = DefaultSearchPaths
	}

	probed := make([]string, 0, len(searchPaths))
	for _, candidate := range searchPaths {
		path := candidate
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectPath, candidate)
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
		probed = append(probed, path)
	}

	var b strings.Builder
	for i, path := range probed {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  - ")
		b.WriteString(path)
	}

	return "", errors.ErrLocalizableNotFound.WithArgs(b.String())
}
