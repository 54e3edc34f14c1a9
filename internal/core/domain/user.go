package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var ErrUserExists = errors.New("User already exists")
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials is the common kind for every login failure. The two
// wrapped variants carry distinct messages but are indistinguishable by
// status code, so a caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrWrongEmail = fmt.Errorf("Email is wrong: %w", ErrInvalidCredentials)
var ErrWrongPassword = fmt.Errorf("Password is wrong: %w", ErrInvalidCredentials)

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
