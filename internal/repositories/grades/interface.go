package grades

import (
	"context"

	"github.com/kolbask4/CollegeActivityApp/internal/models"
)

// Repository stores per-course-year grades. All writes validate the score
// range 0..100 and reject out-of-range values with common.ErrorValidation.
type Repository interface {
	// Create inserts a grade row and fills in its generated ID.
	Create(ctx context.Context, grade *models.Grade) error

	// ListByUser returns all grades owned by the user, in no particular order.
	ListByUser(ctx context.Context, iin string) ([]models.Grade, error)

	// DeleteAllByUser removes every grade owned by the user.
	DeleteAllByUser(ctx context.Context, iin string) error

	// UpdateScore sets the score of the grade with the given id. Updating an
	// unknown id is a no-op, not an error.
	UpdateScore(ctx context.Context, gradeID int64, score int) error
}
