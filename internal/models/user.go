package models

import "time"

// User is the admin credential record. The deployment is single-admin, but
// modelling it as a row (rather than comparing against an environment
// variable) keeps the credential store swappable.
type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// Session is a server-side session record. Tokens are signed JWTs, but each
// one is also backed by a row here so logout can revoke it before expiry.
type Session struct {
	BaseModel
	UserID    string     `gorm:"not null;index" json:"userId"`
	TokenID   string     `gorm:"uniqueIndex;not null" json:"-"` // jti claim
	ExpiresAt time.Time  `gorm:"not null" json:"expiresAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}

// Active reports whether the session can still authenticate requests.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
