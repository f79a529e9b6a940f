package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default profile image applied when the client sends none
const (
	DefaultUserImageURL = "https://cdn-icons-png.flaticon.com/512/3135/3135715.png"
	DefaultUserImageAlt = "Profile"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Name         Name
	Phone        string `db:"phone"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Address      Address
	Image        Image
	IsBusiness   bool `db:"is_business"`
	IsAdmin      bool `db:"is_admin"`

	// Lockout state, mutated only by the login flow
	LoginAttempts int        `db:"login_attempts"`
	LockUntil     *time.Time `db:"lock_until"`

	CreatedAt time.Time `db:"created_at"`
}

// IsLocked reports whether the account lockout is still active at now.
// An elapsed lockUntil means the lock self-heals on the next attempt.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}
