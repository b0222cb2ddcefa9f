package portfolio

import (
	"context"

	"github.com/kolbask4/CollegeActivityApp/internal/models"
)

// Repository stores portfolio items together with their ordered tags. Tags
// live in a normalized child table keyed by (item_id, position); every write
// that touches an item rewrites its tag rows in the same transaction, so an
// item and its tags are always consistent.
type Repository interface {
	// Create inserts an item with its tags and fills in the generated ID.
	Create(ctx context.Context, item *models.PortfolioItem) error

	// Update replaces the row identified by item.ID, including its tag list.
	// Updating an unknown id is a no-op, not an error.
	Update(ctx context.Context, item *models.PortfolioItem) error

	// ListByUser returns all items owned by the user, tags included.
	ListByUser(ctx context.Context, iin string) ([]models.PortfolioItem, error)

	// ListByUserAndCategory returns the user's items in the given category.
	ListByUserAndCategory(ctx context.Context, iin string, category models.Category) ([]models.PortfolioItem, error)

	// DeleteByID removes the item and its tags; unknown ids are a no-op.
	DeleteByID(ctx context.Context, itemID int64) error
}
