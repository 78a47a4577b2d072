package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	FullName  string
	Email     string
	CreatedAt time.Time
}

// HasCompleteProfile reports whether the user can be contacted about a
// booking. The profile-completeness rule rejects reservations otherwise.
func (u *User) HasCompleteProfile() bool {
	return strings.TrimSpace(u.Email) != ""
}
