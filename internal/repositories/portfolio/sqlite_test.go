package portfolio

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolbask4/CollegeActivityApp/internal/common"
	"github.com/kolbask4/CollegeActivityApp/internal/models"
	"github.com/kolbask4/CollegeActivityApp/internal/storage"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO users (iin, name, password_hash, course) VALUES ('1', 'u', x'00', 2)`)
	require.NoError(t, err)
	return db
}

func sampleItem() *models.PortfolioItem {
	return &models.PortfolioItem{
		UserIIN:     "1",
		Title:       "Course project",
		Description: "REST service in Go",
		Category:    models.CategoryProject,
		ImageRef:    "images/abc.png",
		Date:        time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"go", "backend", "sqlite"},
	}
}

func TestCreate_RoundTripsTagsInOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	item := sampleItem()
	require.NoError(t, r.Create(ctx, item))
	require.NotZero(t, item.ID)

	got, err := r.ListByUser(ctx, "1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, item.Title, got[0].Title)
	assert.Equal(t, models.CategoryProject, got[0].Category)
	assert.Equal(t, item.Date, got[0].Date)
	assert.Equal(t, []string{"go", "backend", "sqlite"}, got[0].Tags, "tag order must be preserved")
}

func TestCreate_MissingUser(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	item := sampleItem()
	item.UserIIN = "ghost"
	err := r.Create(context.Background(), item)
	require.ErrorIs(t, err, common.ErrorForeignKey)
}

func TestUpdate_RewritesTags(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	item := sampleItem()
	require.NoError(t, r.Create(ctx, item))

	item.Title = "Diploma project"
	item.Category = models.CategoryDiploma
	item.Tags = []string{"thesis"}
	require.NoError(t, r.Update(ctx, item))

	got, err := r.ListByUser(ctx, "1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Diploma project", got[0].Title)
	assert.Equal(t, models.CategoryDiploma, got[0].Category)
	assert.Equal(t, []string{"thesis"}, got[0].Tags)

	// stale tag rows must be gone
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM portfolio_tags`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestUpdate_UnknownIDIsNoop(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	item := sampleItem()
	item.ID = 777
	require.NoError(t, r.Update(ctx, item))

	got, err := r.ListByUser(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, got)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM portfolio_tags`).Scan(&n))
	assert.Zero(t, n, "no-op update must not write tag rows")
}

func TestListByUserAndCategory(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	project := sampleItem()
	require.NoError(t, r.Create(ctx, project))

	cert := sampleItem()
	cert.Title = "Go certificate"
	cert.Category = models.CategoryCertificate
	cert.Tags = nil
	require.NoError(t, r.Create(ctx, cert))

	got, err := r.ListByUserAndCategory(ctx, "1", models.CategoryCertificate)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Go certificate", got[0].Title)
	assert.Empty(t, got[0].Tags)

	got, err = r.ListByUserAndCategory(ctx, "1", models.CategoryDiploma)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteByID_RemovesTags(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	item := sampleItem()
	require.NoError(t, r.Create(ctx, item))

	require.NoError(t, r.DeleteByID(ctx, item.ID))

	got, err := r.ListByUser(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, got)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM portfolio_tags`).Scan(&n))
	assert.Zero(t, n, "tag rows must cascade with the item")

	// unknown id is a no-op
	require.NoError(t, r.DeleteByID(ctx, 424242))
}
