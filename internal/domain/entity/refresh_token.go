package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a stored, hashed refresh token. Only the SHA-256 hash of
// the token string is persisted; logout deletes the row, which invalidates
// the session.
type RefreshToken struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the token record.
	UserID    uuid.UUID // The user this session belongs to.
	TokenHash string    // SHA-256 hash of the refresh token string.
	ExpiresAt time.Time // When this token stops being accepted.
	CreatedAt time.Time // Timestamp of when this session was opened.
}

// IsExpired reports whether the token has passed its expiry.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
