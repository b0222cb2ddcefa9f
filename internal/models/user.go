// Package models defines the entity types persisted by the application:
// users and their owned grades, goals, and portfolio items.
package models

// User is the root owner of all other records. It is keyed by the student's
// IIN (national identification number) rather than a surrogate id.
type User struct {
	// IIN is the globally unique national identifier.
	IIN string

	// Name is the display name shown in the UI.
	Name string

	// PasswordHash is the bcrypt hash of the user's password. The plaintext
	// password is never stored.
	PasswordHash []byte

	// Course is the current course year, 1..4.
	Course int
}
