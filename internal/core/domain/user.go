package domain

import (
	"errors"
	"time"
)

// AccountKind distinguishes the demo account from ordinary accounts. It is
// decided once at authentication time and threaded through as a typed value;
// nothing downstream compares email strings.
type AccountKind string

const (
	KindOrdinary AccountKind = "ordinary"
	KindDemo     AccountKind = "demo"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("no authenticated user")

// User models an account in the system.
type User struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Kind         AccountKind `json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
}
