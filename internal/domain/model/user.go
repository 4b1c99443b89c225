package model

import "time"

// User is the member on whose behalf credits are displayed and purchased.
// Authentication is handled upstream; handlers receive an already-resolved user.
type User struct {
	ID           string // UUID
	Email        string
	Name         string
	RegisteredAt time.Time
}
