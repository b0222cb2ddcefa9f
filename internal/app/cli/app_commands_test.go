package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolbask4/CollegeActivityApp/internal/config"
	"github.com/kolbask4/CollegeActivityApp/internal/logging"
	"github.com/kolbask4/CollegeActivityApp/internal/repositories/goals"
	"github.com/kolbask4/CollegeActivityApp/internal/repositories/grades"
	"github.com/kolbask4/CollegeActivityApp/internal/repositories/portfolio"
	"github.com/kolbask4/CollegeActivityApp/internal/services"
	"github.com/kolbask4/CollegeActivityApp/internal/session"
	"github.com/kolbask4/CollegeActivityApp/internal/storage"
)

// newTestApp builds an App over a temp database with scripted input lines.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *sql.DB) {
	t.Helper()
	dir := t.TempDir()

	db, err := storage.Open(context.Background(), filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var out bytes.Buffer
	app := &App{
		config:    &config.Config{DataDir: dir, DBFile: "test.db", LogLevel: "error"},
		log:       logging.New("error"),
		db:        db,
		auth:      services.NewAuthService(db, session.New(dir)),
		grades:    grades.NewSQLiteRepository(db),
		goals:     goals.NewSQLiteRepository(db),
		portfolio: portfolio.NewSQLiteRepository(db),
		reader:    bufio.NewReader(strings.NewReader(input)),
		out:       &out,
	}
	return app, &out, db
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = old })
}

func TestApp_RegisterThenGrades(t *testing.T) {
	// register prompts: name, iin; password comes from the stub
	app, out, _ := newTestApp(t, "Dana\n123456789012\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))
	require.True(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Welcome, Dana!")

	out.Reset()
	require.NoError(t, app.Grades(ctx))
	assert.Contains(t, out.String(), "course 1:", "registration must seed at least course 1")
}

func TestApp_RegisterDuplicateShowsMessage(t *testing.T) {
	app, out, _ := newTestApp(t, "A\n42\nB\n42\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Logout(ctx))

	out.Reset()
	require.NoError(t, app.Register(ctx))
	assert.Contains(t, out.String(), "Account already exists.")
	assert.False(t, app.isLoggedIn())
}

func TestApp_LoginWrongPassword(t *testing.T) {
	app, out, _ := newTestApp(t, "A\n42\n42\n")
	ctx := context.Background()

	stubPassword(t, "right")
	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Logout(ctx))

	stubPassword(t, "wrong")
	out.Reset()
	require.NoError(t, app.Login(ctx))
	assert.Contains(t, out.String(), "Invalid IIN or password.")
	assert.False(t, app.isLoggedIn())
}

func TestApp_GoalLifecycle(t *testing.T) {
	// register: name, iin
	// addgoal: title, description, deadline
	// editgoal: id, progress
	// complete: id
	app, out, _ := newTestApp(t,
		"A\n1\n"+
			"Read 10 books\nclassics\n2026-12-31\n"+
			"1\n60\n"+
			"1\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.AddGoal(ctx))
	require.NoError(t, app.EditGoal(ctx))
	require.NoError(t, app.CompleteGoal(ctx))

	out.Reset()
	require.NoError(t, app.Goals(ctx))
	s := out.String()
	assert.Contains(t, s, "Read 10 books")
	assert.Contains(t, s, "60%")
	assert.Contains(t, s, "(x)")
}

func TestApp_PortfolioAddAndFilter(t *testing.T) {
	// additem: title, description, category, date, tags, image path (empty)
	// portfolio: category filter
	app, out, _ := newTestApp(t,
		"A\n1\n"+
			"My project\nREST API\nproject\n2026-01-15\ngo, web\n\n"+
			"certificate\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.AddItem(ctx))
	assert.Contains(t, out.String(), "added.")

	out.Reset()
	require.NoError(t, app.Portfolio(ctx))
	assert.Contains(t, out.String(), "No portfolio items.", "certificate filter must exclude the project")
}

func TestApp_DeleteAccountRequiresConfirmation(t *testing.T) {
	app, out, db := newTestApp(t, "A\n1\nno\nyes\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))

	require.NoError(t, app.DeleteAccount(ctx))
	assert.Contains(t, out.String(), "Cancelled.")
	require.True(t, app.isLoggedIn())

	out.Reset()
	require.NoError(t, app.DeleteAccount(ctx))
	assert.Contains(t, out.String(), "Account deleted.")
	assert.False(t, app.isLoggedIn())

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Zero(t, n)
}
