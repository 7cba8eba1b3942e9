// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. It owns zero or more orders and carries
// a single role that gates access to the admin surface.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	Email        string    // The user's email, unique and used as the login identifier.
	PasswordHash string    // The bcrypt hash of the user's password. Never exposed outward.
	Role         Role      // The user's role: ordinary user or administrator.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// FullName joins the first and last name, tolerating either being empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
