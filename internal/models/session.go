package models

import "time"

// Session is the backing row for the external web-session middleware.
// Sess is an opaque JSON blob; domain code never looks inside it.
type Session struct {
	SID    string    `json:"sid" gorm:"primaryKey;type:varchar(255)"`
	Sess   string    `json:"sess" gorm:"type:text;not null"`
	Expire time.Time `json:"expire" gorm:"index;not null"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.Expire.After(now)
}
