// Package models holds the persisted records of DevNest. Shared fields are
// carried by small value types embedded by composition.
package models

import "time"

// Person is the identity and credential data shared by every account type.
type Person struct {
	Name        string
	Email       string
	Password    string // bcrypt hash once persisted
	DateOfBirth *time.Time
}

// Audit keeps creation and last modification timestamps.
type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Touch stamps the record; created marks a first insert.
func (a *Audit) Touch(now time.Time, created bool) {
	if created {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}
