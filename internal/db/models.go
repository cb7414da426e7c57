package db

import (
	"database/sql"
	"time"
)

// Interaction kinds
const (
	KindCall     = "call"
	KindAnnounce = "announce"
)

// Interaction is one recorded hand-off to the dialer or the speaker
type Interaction struct {
	ID          int64
	ContactID   string
	ContactName string
	Phone       sql.NullString
	Kind        string
	Screen      sql.NullString // which tab triggered it
	CreatedAt   time.Time
}

// NewNullString creates a sql.NullString from a string
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
