package model

// Language is the UI language preference. The enumeration is closed; any
// other value is rejected at the endpoint and defaulted on read.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageTamil   Language = "ta"
)

// DefaultLanguage is used when no preference record exists.
const DefaultLanguage = LanguageEnglish

// Valid reports whether l is one of the allowed languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageTamil:
		return true
	}
	return false
}

// Name returns the natural-language name passed to the content-generation
// service ("Target Language: Hindi" etc.).
func (l Language) Name() string {
	switch l {
	case LanguageHindi:
		return "Hindi"
	case LanguageTamil:
		return "Tamil"
	default:
		return "English"
	}
}

// Theme is the presentation theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when no preference record exists.
const DefaultTheme = ThemeDark

// Valid reports whether t is one of the allowed themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
