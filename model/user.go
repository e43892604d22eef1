package model

// User is the public identity held in the current session. It never carries
// a password; credentials only transit RegisteredUser during the login check.
type User struct {
	ID       string `json:"id" example:"b1c2d3e4"`
	Username string `json:"username" example:"John Doe"`
	Email    string `json:"email" example:"john@example.com"`
}

// RegisteredUser is one entry of the registered-users record. The Password
// field holds the HMAC hash, not the plaintext.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GuestKey is the per-user namespace used when no session email is present.
const GuestKey = "guest"

// UserKey returns the namespace key for per-user records (history, chat).
func UserKey(email string) string {
	if email == "" {
		return GuestKey
	}
	return email
}
