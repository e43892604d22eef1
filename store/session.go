package store

import "github.com/hgapps/medicare-api/model"

// Login writes the single global current-session record. At most one session
// is active at a time.
func (s *Store) Login(user model.User) error {
	return s.write(KeyCurrentSession, user)
}

// Logout clears the current-session record.
func (s *Store) Logout() error {
	return s.delete(KeyCurrentSession)
}

// CurrentSession returns the logged-in user, or nil when no session exists
// or the record is unreadable.
func (s *Store) CurrentSession() *model.User {
	var user model.User
	if !s.read(KeyCurrentSession, &user) || user.Email == "" {
		return nil
	}
	return &user
}

// SetLanguage persists the language preference. The value must already be
// validated against the closed enumeration.
func (s *Store) SetLanguage(lang model.Language) error {
	return s.write(KeyLanguage, lang)
}

// Language returns the persisted language preference, defaulting when the
// record is absent or holds an out-of-enum value.
func (s *Store) Language() model.Language {
	var lang model.Language
	if !s.read(KeyLanguage, &lang) || !lang.Valid() {
		return model.DefaultLanguage
	}
	return lang
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(theme model.Theme) error {
	return s.write(KeyTheme, theme)
}

// Theme returns the persisted theme preference, defaulting when absent or
// invalid.
func (s *Store) Theme() model.Theme {
	var theme model.Theme
	if !s.read(KeyTheme, &theme) || !theme.Valid() {
		return model.DefaultTheme
	}
	return theme
}
