package query

import "log/slog"

// defaultTranslator backs NewFilter and the package-level logger
var defaultTranslator = NewTranslator()

// DefaultTranslator returns the Translator used by NewFilter
func DefaultTranslator() *Translator {
	return defaultTranslator
}

// SetLogger sets the logger of the default translator.
// If logger is nil, slog.Default() is used.
func SetLogger(logger *slog.Logger) {
	defaultTranslator.SetLogger(logger)
}
