package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/util"
)

// Sentinel errors for credential operations.
var (
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrNoAccounts         = errors.New("no accounts found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Demo fallback credentials, honored only while the registered-users record
// is empty.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo"
)

// RegisteredUsers returns the full registration list, empty on a missing or
// corrupt record.
func (s *Store) RegisteredUsers() []model.RegisteredUser {
	var users []model.RegisteredUser
	s.read(KeyRegisteredUsers, &users)
	return users
}

// RegisterUser appends a new account to the registered-users record. The
// plaintext password is hashed before it is stored; duplicate emails are
// rejected.
func (s *Store) RegisterUser(username, email, password string) (model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	users := s.RegisteredUsers()
	for _, u := range users {
		if u.Email == email {
			return model.User{}, ErrEmailExists
		}
	}

	reg := model.RegisteredUser{
		ID:       uuid.NewString(),
		Username: util.NormalizeName(username),
		Email:    email,
		Password: util.HashPassword(password),
	}
	users = append(users, reg)
	if err := s.write(KeyRegisteredUsers, users); err != nil {
		return model.User{}, err
	}
	return model.User{ID: reg.ID, Username: reg.Username, Email: reg.Email}, nil
}

// Authenticate checks email and password against the registered-users
// record. While no accounts exist, the demo credentials log in a synthetic
// demo user; otherwise a missing match distinguishes between an empty
// registry (ErrNoAccounts) and bad credentials.
func (s *Store) Authenticate(email, password string) (model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	users := s.RegisteredUsers()

	for _, u := range users {
		if u.Email == email && u.Password == util.HashPassword(password) {
			return model.User{ID: u.ID, Username: u.Username, Email: u.Email}, nil
		}
	}

	if len(users) == 0 {
		if email == DemoEmail && password == DemoPassword {
			return model.User{ID: "demo", Username: "Demo User", Email: DemoEmail}, nil
		}
		return model.User{}, ErrNoAccounts
	}
	return model.User{}, ErrInvalidCredentials
}
