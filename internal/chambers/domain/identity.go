package domain

import "time"

// Identity is a judge who can log in. DisplayName is the key cases are
// assigned by.
type Identity struct {
	ID           string
	Username     string
	PasswordHash string // argon2id PHC string
	DisplayName  string
	Court        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
