package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/l10n-migrate/messages"
)

var (
	// ErrProjectNotFound is returned when the project path does not exist
	ErrProjectNotFound = i18n.NewError(messages.Keys.App.Error.ProjectNotFound)

	// ErrLocalizableNotFound is returned when no Localizable.strings file could be located
	ErrLocalizableNotFound = i18n.NewError(messages.Keys.App.Error.LocalizableNotFound)

	// ErrNoKeys is returned when the resource file yields no keys
	ErrNoKeys = i18n.NewError(messages.Keys.App.Error.NoKeys)

	// ErrNotText is returned when a source file is not valid UTF-8
	ErrNotText = i18n.NewError(messages.Keys.App.Error.NotText)

	// ErrFailedToDecode is returned when a resource file cannot be transcoded
	ErrFailedToDecode = i18n.NewError(messages.Keys.App.Error.FailedToDecode)

	// ErrFailedToReadFile is returned when reading a file fails
	ErrFailedToReadFile = i18n.NewError(messages.Keys.App.Error.FailedToReadFile)

	// ErrFailedToWriteFile is returned when writing a file fails
	ErrFailedToWriteFile = i18n.NewError(messages.Keys.App.Error.FailedToWriteFile)

	// ErrFailedToBackup is returned when a backup copy cannot be written
	ErrFailedToBackup = i18n.NewError(messages.Keys.App.Error.FailedToBackup)

	// ErrFailedToScan is returned when the project tree cannot be walked
	ErrFailedToScan = i18n.NewError(messages.Keys.App.Error.FailedToScan)

	// ErrFailedToLoadConfig is returned when the project config file cannot be decoded
	ErrFailedToLoadConfig = i18n.NewError(messages.Keys.App.Error.FailedToLoadConfig)

	// ErrInvalidNaming is returned for an unknown naming style
	ErrInvalidNaming = i18n.NewError(messages.Keys.App.Error.InvalidNaming)

	// ErrInvalidJobs is returned when the job count is below one
	ErrInvalidJobs = i18n.NewError(messages.Keys.App.Error.InvalidJobs)

	// ErrUnknownLanguageCode is returned when an unknown language code is encountered
	ErrUnknownLanguageCode = i18n.NewError(messages.Keys.App.Error.UnknownLanguage)
)

// Translate renders err through tr. Translatable errors anywhere in the chain are
// looked up by key so that the message follows the active language; other errors
// are printed as is.
func Translate(tr i18n.Translator, err error) string {
	if err == nil {
		return ""
	}

	var trErr i18n.TranslatableError
	if !stderrors.As(err, &trErr) {
		return err.Error()
	}

	msg := tr.T(trErr.Key(), trErr.Args()...)
	if wrapped := trErr.Unwrap(); wrapped != nil {
		return fmt.Sprintf("%s: %s", msg, Translate(tr, wrapped))
	}

	return msg
}
