package output

// T is the minimal i18n contract for user-facing API messages.
// Implementations resolve a message key for a locale, with optional template
// data, falling back to the default locale when the key is missing.
type T interface {
	T(locale, key string, data map[string]any) string
}
