package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

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

// Create inserts a new user row. Reinserting an existing IIN returns
// common.ErrorAlreadyExists.
func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (iin, name, password_hash, course) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, user.IIN, user.Name, user.PasswordHash, user.Course)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindByCredentials fetches the user by IIN and verifies the password against
// the stored bcrypt hash. Any mismatch (unknown IIN or wrong password)
// returns (nil, nil).
func (r *SQLiteRepository) FindByCredentials(ctx context.Context, iin, password string) (*models.User, error) {
	user, err := r.FindByID(ctx, iin)
	if err != nil || user == nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// FindByID returns the user with the given IIN, or (nil, nil) if absent.
func (r *SQLiteRepository) FindByID(ctx context.Context, iin string) (*models.User, error) {
	query := `SELECT iin, name, password_hash, course FROM users WHERE iin = ?`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, iin).
		Scan(&user.IIN, &user.Name, &user.PasswordHash, &user.Course)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return user, nil
}

// DeleteByID removes the user row. Deleting an unknown IIN is a no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, iin string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE iin = ?`, iin)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
