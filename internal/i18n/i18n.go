package i18n

// Locale selects which case catalog and translation table are active.
type Locale string

const (
	LocaleEN   Locale = "en"
	LocalePTBR Locale = "pt-BR"
)

// DefaultLocale is the fallback for unknown locale tags.
const DefaultLocale = LocaleEN

// AllLocales returns the supported locales in display order.
func AllLocales() []Locale {
	return []Locale{LocaleEN, LocalePTBR}
}

// DisplayName returns a human-readable name for a locale.
func (l Locale) DisplayName() string {
	switch l {
	case LocaleEN:
		return "English"
	case LocalePTBR:
		return "Português (Brasil)"
	default:
		return string(l)
	}
}

// Normalize maps unknown locale tags to the default locale.
func Normalize(l Locale) Locale {
	for _, known := range AllLocales() {
		if l == known {
			return l
		}
	}
	return DefaultLocale
}

// Next returns the locale after l in AllLocales order, wrapping around.
// Used by the UI locale switcher.
func Next(l Locale) Locale {
	all := AllLocales()
	for i, known := range all {
		if l == known {
			return all[(i+1)%len(all)]
		}
	}
	return DefaultLocale
}

// T looks up a translation key for the given locale. Missing keys fall
// back to the default locale's table, then to the key itself so the UI
// never renders an empty string.
func T(l Locale, key string) string {
	if table, ok := tables[Normalize(l)]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[DefaultLocale][key]; ok {
		return s
	}
	return key
}
