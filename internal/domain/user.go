package domain

import "time"

// User represents a registered user.
type User struct {
	ID             string
	Username       string
	FirstName      string
	LastName       string
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
