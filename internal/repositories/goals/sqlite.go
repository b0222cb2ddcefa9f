package goals

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kolbask4/CollegeActivityApp/internal/common"
	"github.com/kolbask4/CollegeActivityApp/internal/dbx"
	"github.com/kolbask4/CollegeActivityApp/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func validProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("%w: progress %d outside 0..100", common.ErrorValidation, progress)
	}
	return nil
}

// mentor_comment is nullable in the schema; an empty comment is stored as NULL.
func commentParam(comment string) any {
	if comment == "" {
		return nil
	}
	return comment
}

// Create inserts a goal row and fills in goal.ID.
func (r *SQLiteRepository) Create(ctx context.Context, goal *models.Goal) error {
	if err := validProgress(goal.Progress); err != nil {
		return err
	}

	query := `
		INSERT INTO goals (user_iin, title, description, progress, deadline, mentor_comment, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		goal.UserIIN, goal.Title, goal.Description, goal.Progress,
		goal.Deadline.Unix(), commentParam(goal.MentorComment), goal.Completed)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return common.ErrorForeignKey
		}
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	goal.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read goal id: %w", err)
	}
	return nil
}

// Update replaces the row identified by goal.ID. Unknown ids leave the table
// unchanged and return nil.
func (r *SQLiteRepository) Update(ctx context.Context, goal *models.Goal) error {
	if err := validProgress(goal.Progress); err != nil {
		return err
	}

	query := `
		UPDATE goals
		SET title = ?, description = ?, progress = ?, deadline = ?, mentor_comment = ?, completed = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		goal.Title, goal.Description, goal.Progress, goal.Deadline.Unix(),
		commentParam(goal.MentorComment), goal.Completed, goal.ID)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	return nil
}

// ListByUser returns every goal owned by the user.
func (r *SQLiteRepository) ListByUser(ctx context.Context, iin string) ([]models.Goal, error) {
	query := `
		SELECT id, user_iin, title, description, progress, deadline, mentor_comment, completed
		FROM goals WHERE user_iin = ?
	`
	rows, err := r.db.QueryContext(ctx, query, iin)
	if err != nil {
		return nil, fmt.Errorf("failed to select goals: %w", err)
	}
	defer rows.Close()

	var result []models.Goal
	for rows.Next() {
		var g models.Goal
		var deadline int64
		var comment sql.NullString
		if err := rows.Scan(&g.ID, &g.UserIIN, &g.Title, &g.Description,
			&g.Progress, &deadline, &comment, &g.Completed); err != nil {
			return nil, err
		}
		g.Deadline = time.Unix(deadline, 0).UTC()
		g.MentorComment = comment.String
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes the goal with the given id. Unknown ids are a no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, goalID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
