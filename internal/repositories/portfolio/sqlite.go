package portfolio

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kolbask4/CollegeActivityApp/internal/common"
	"github.com/kolbask4/CollegeActivityApp/internal/dbx"
	"github.com/kolbask4/CollegeActivityApp/internal/models"
)

// SQLiteRepository implements Repository over a *sql.DB. Unlike the other
// repositories it holds the full DB handle rather than a DBTX: item writes
// span two tables (portfolio_items + portfolio_tags) and open their own
// transaction via dbx.WithTx.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DB.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts the item and its tag rows in one transaction and fills in
// item.ID.
func (r *SQLiteRepository) Create(ctx context.Context, item *models.PortfolioItem) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `
			INSERT INTO portfolio_items (user_iin, title, description, category, image_ref, item_date)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		res, err := tx.ExecContext(ctx, query,
			item.UserIIN, item.Title, item.Description, string(item.Category),
			item.ImageRef, item.Date.Unix())
		if err != nil {
			return fmt.Errorf("failed to insert portfolio item: %w", err)
		}

		item.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read portfolio item id: %w", err)
		}

		return insertTags(ctx, tx, item.ID, item.Tags)
	})
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return common.ErrorForeignKey
		}
		return err
	}
	return nil
}

// Update replaces the item row and rewrites its tag rows in one transaction.
// Unknown ids leave everything unchanged and return nil.
func (r *SQLiteRepository) Update(ctx context.Context, item *models.PortfolioItem) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `
			UPDATE portfolio_items
			SET title = ?, description = ?, category = ?, image_ref = ?, item_date = ?
			WHERE id = ?
		`
		res, err := tx.ExecContext(ctx, query,
			item.Title, item.Description, string(item.Category),
			item.ImageRef, item.Date.Unix(), item.ID)
		if err != nil {
			return fmt.Errorf("failed to update portfolio item: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			// no such item, leave tags alone
			return nil
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM portfolio_tags WHERE item_id = ?`, item.ID); err != nil {
			return fmt.Errorf("failed to clear portfolio tags: %w", err)
		}
		return insertTags(ctx, tx, item.ID, item.Tags)
	})
}

func insertTags(ctx context.Context, tx dbx.DBTX, itemID int64, tags []string) error {
	for pos, tag := range tags {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO portfolio_tags (item_id, position, tag) VALUES (?, ?, ?)`,
			itemID, pos, tag)
		if err != nil {
			return fmt.Errorf("failed to insert portfolio tag: %w", err)
		}
	}
	return nil
}

// ListByUser returns every item owned by the user, tags included.
func (r *SQLiteRepository) ListByUser(ctx context.Context, iin string) ([]models.PortfolioItem, error) {
	return r.list(ctx,
		`SELECT id, user_iin, title, description, category, image_ref, item_date
		 FROM portfolio_items WHERE user_iin = ?`, iin)
}

// ListByUserAndCategory returns the user's items in the given category.
func (r *SQLiteRepository) ListByUserAndCategory(ctx context.Context, iin string, category models.Category) ([]models.PortfolioItem, error) {
	return r.list(ctx,
		`SELECT id, user_iin, title, description, category, image_ref, item_date
		 FROM portfolio_items WHERE user_iin = ? AND category = ?`, iin, string(category))
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.PortfolioItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select portfolio items: %w", err)
	}
	defer rows.Close()

	var result []models.PortfolioItem
	for rows.Next() {
		var item models.PortfolioItem
		var category string
		var date int64
		if err := rows.Scan(&item.ID, &item.UserIIN, &item.Title, &item.Description,
			&category, &item.ImageRef, &date); err != nil {
			return nil, err
		}
		item.Category = models.Category(category)
		item.Date = time.Unix(date, 0).UTC()
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		tags, err := r.tagsFor(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Tags = tags
	}
	return result, nil
}

func (r *SQLiteRepository) tagsFor(ctx context.Context, itemID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tag FROM portfolio_tags WHERE item_id = ? ORDER BY position`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to select portfolio tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// DeleteByID removes the item; its tag rows cascade away. Unknown ids are a
// no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, itemID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM portfolio_items WHERE id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}
	return nil
}
