// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an account in the system. The username doubles as the login
// identifier and is immutable once registered.
type User struct {
	ID             string // Store-assigned identifier (hex).
	Username       string // Unique login identifier.
	Email          string
	FullName       string
	HashedPassword string // Never exposed outside the auth flow.
	Disabled       bool   // Toggled by an administrative process; a disabled user cannot act.
}
