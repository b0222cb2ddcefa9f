package models

import "time"

// Goal is a development goal owned by a user.
//
// Progress and Completed are independent fields: reaching 100% progress does
// not mark the goal completed, and a goal may be closed early. Callers decide
// when to flip Completed.
type Goal struct {
	ID      int64
	UserIIN string

	Title       string
	Description string

	// Progress is the completion percentage, 0..100.
	Progress int

	// Deadline is the target date for the goal.
	Deadline time.Time

	// MentorComment is optional free-form feedback; empty when absent.
	MentorComment string

	Completed bool
}
