package models

import (
	"errors"
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the snapshot of a user kept in a session. It is written once
// at login and never refreshed from the store.
type Identity struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Profile is the public view of a user.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Email: u.Email}
}

func (u *User) Profile() Profile {
	return Profile{Username: u.Username, Email: u.Email}
}

// Validate only checks presence; usernames and emails are otherwise free-form.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" { return errors.New("username required") }
	if strings.TrimSpace(u.Email) == "" { return errors.New("email required") }
	return nil
}
