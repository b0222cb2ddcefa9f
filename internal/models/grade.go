package models

// Grade is a per-course-year score owned by a user. Rows are seeded at
// registration, one per course year 1..User.Course.
type Grade struct {
	ID      int64
	UserIIN string

	// Score is the numeric grade, 0..100.
	Score int

	// Course is the course year this grade belongs to.
	Course int
}
