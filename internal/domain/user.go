package domain

import "time"

// UserStatus represents lifecycle states for a stored account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// User is a persisted account. Its ID is the login identifier.
type User struct {
	ID           string
	Email        *string
	PasswordHash string
	Role         ResourceRole
	FirstName    string
	LastName     string
	Phone        *string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Active reports whether the account may log in.
func (u *User) Active() bool {
	return u != nil && u.Status == UserStatusActive
}
