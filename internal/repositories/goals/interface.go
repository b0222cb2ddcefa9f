package goals

import (
	"context"

	"github.com/kolbask4/CollegeActivityApp/internal/models"
)

// Repository stores development goals. Writes validate the progress range
// 0..100 and reject out-of-range values with common.ErrorValidation.
//
// Progress and the completion flag are independent: nothing here flips
// Completed when progress reaches 100.
type Repository interface {
	// Create inserts a goal row and fills in its generated ID.
	Create(ctx context.Context, goal *models.Goal) error

	// Update replaces the whole row identified by goal.ID. Updating an
	// unknown id is a no-op, not an error.
	Update(ctx context.Context, goal *models.Goal) error

	// ListByUser returns all goals owned by the user.
	ListByUser(ctx context.Context, iin string) ([]models.Goal, error)

	// DeleteByID removes the goal with the given id; unknown ids are a no-op.
	DeleteByID(ctx context.Context, goalID int64) error
}
