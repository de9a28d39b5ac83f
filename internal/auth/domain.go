// Package auth implements email/password accounts and bearer-token
// authentication for the API.
package auth

import "time"

// User represents a customer account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

// Identity is the token-carried subset of a user attached to requests.
type Identity struct {
	UserID int64
	Email  string
}

// Profile is the public view of a user returned by login.
type Profile struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Profile returns the public fields of the user. The password hash never
// leaves this package.
func (u *User) Profile() Profile {
	return Profile{Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}
