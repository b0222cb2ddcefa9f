package grades

import (
	"context"
	"fmt"

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

func validScore(score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: score %d outside 0..100", common.ErrorValidation, score)
	}
	return nil
}

// Create inserts a grade row and fills in grade.ID.
func (r *SQLiteRepository) Create(ctx context.Context, grade *models.Grade) error {
	if err := validScore(grade.Score); err != nil {
		return err
	}

	query := `INSERT INTO grades (user_iin, score, course) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, grade.UserIIN, grade.Score, grade.Course)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return common.ErrorForeignKey
		}
		return fmt.Errorf("failed to insert grade: %w", err)
	}

	grade.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read grade id: %w", err)
	}
	return nil
}

// ListByUser returns every grade owned by the user.
func (r *SQLiteRepository) ListByUser(ctx context.Context, iin string) ([]models.Grade, error) {
	query := `SELECT id, user_iin, score, course FROM grades WHERE user_iin = ?`

	rows, err := r.db.QueryContext(ctx, query, iin)
	if err != nil {
		return nil, fmt.Errorf("failed to select grades: %w", err)
	}
	defer rows.Close()

	var result []models.Grade
	for rows.Next() {
		var g models.Grade
		if err := rows.Scan(&g.ID, &g.UserIIN, &g.Score, &g.Course); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteAllByUser removes every grade owned by the user.
func (r *SQLiteRepository) DeleteAllByUser(ctx context.Context, iin string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM grades WHERE user_iin = ?`, iin)
	if err != nil {
		return fmt.Errorf("failed to delete grades: %w", err)
	}
	return nil
}

// UpdateScore sets the score of the grade with the given id. An unknown id
// leaves the table unchanged and returns nil.
func (r *SQLiteRepository) UpdateScore(ctx context.Context, gradeID int64, score int) error {
	if err := validScore(score); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `UPDATE grades SET score = ? WHERE id = ?`, score, gradeID)
	if err != nil {
		return fmt.Errorf("failed to update grade score: %w", err)
	}
	return nil
}
