package models

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// User is the record created by any login/register/social-login call.
// There is at most one current user; no password is ever stored on it.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// AdminSession is the marker persisted while the admin dashboard is open.
type AdminSession struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Password wraps a bcrypt hash. Shopper logins are simulated and never touch
// this; it backs the admin credential check only.
type Password struct {
	Hash string
}

// Set hashes the plaintext password and stores the hash.
func (p *Password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	return nil
}

// Matches compares a plaintext password against the stored hash.
func (p *Password) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
