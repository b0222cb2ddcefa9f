// Package cli implements the interactive command-line surface of the
// college records application. It is a consumer of the persistence and
// session layer; all invariants live below it.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/kolbask4/CollegeActivityApp/internal/config"
	"github.com/kolbask4/CollegeActivityApp/internal/filex"
	"github.com/kolbask4/CollegeActivityApp/internal/logging"
	"github.com/kolbask4/CollegeActivityApp/internal/models"
	"github.com/kolbask4/CollegeActivityApp/internal/repositories/goals"
	"github.com/kolbask4/CollegeActivityApp/internal/repositories/grades"
	"github.com/kolbask4/CollegeActivityApp/internal/repositories/portfolio"
	"github.com/kolbask4/CollegeActivityApp/internal/services"
	"github.com/kolbask4/CollegeActivityApp/internal/session"
	"github.com/kolbask4/CollegeActivityApp/internal/storage"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	auth      services.AuthService
	grades    grades.Repository
	goals     goals.Repository
	portfolio portfolio.Repository

	user   *models.User
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	if _, err := filex.EnsureDir(cfg.DataDir); err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, cfg.DBPath())
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}
	log.Debug(ctx, "database opened", "path", cfg.DBPath())

	sess := session.New(cfg.DataDir)

	return &App{
		config:    cfg,
		log:       log,
		db:        db,
		auth:      services.NewAuthService(db, sess),
		grades:    grades.NewSQLiteRepository(db),
		goals:     goals.NewSQLiteRepository(db),
		portfolio: portfolio.NewSQLiteRepository(db),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run restores a previous session if one was recorded, then enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	user, err := a.auth.Restore(ctx)
	if err != nil {
		a.log.Error(ctx, "session restore failed", "err", err)
	}
	if user != nil {
		a.user = user
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	}

	a.Root(ctx)
}

func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Error(context.Background(), "error closing database", "err", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}
