// Package services contains application services composed from repositories
// and the session store. This file implements authentication: login,
// registration with grade seeding, logout, session rehydration, and account
// deletion.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/kolbask4/CollegeActivityApp/internal/common"
	"github.com/kolbask4/CollegeActivityApp/internal/dbx"
	"github.com/kolbask4/CollegeActivityApp/internal/models"
	"github.com/kolbask4/CollegeActivityApp/internal/repositories/grades"
	"github.com/kolbask4/CollegeActivityApp/internal/repositories/users"
	"github.com/kolbask4/CollegeActivityApp/internal/session"
)

// randIntN is a test seam for the random course number and seeded scores.
var randIntN = rand.Intn

// AuthService defines the authentication surface the CLI consumes.
//
// Contract:
//   - Login: verify credentials; a mismatch yields common.ErrorUnauthorized,
//     which callers report to the user inline, never as a system error.
//   - Register: validate fields, create the user, seed one grade per course
//     year, and open a session.
//   - Restore: rehydrate the session recorded by a previous process run.
//   - Logout: clear the session record.
//   - DeleteAccount: remove the user and, by cascade, everything they own.
type AuthService interface {
	Login(ctx context.Context, iin, password string) (*models.User, error)
	Register(ctx context.Context, name, iin, password string) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	Logout() error
	DeleteAccount(ctx context.Context, iin string) error
}

// authService is the concrete AuthService backed by the local database and
// the durable session store.
type authService struct {
	db      *sql.DB
	session *session.Store
}

// NewAuthService constructs an AuthService bound to the given DB and session store.
func NewAuthService(db *sql.DB, sess *session.Store) AuthService {
	return &authService{db: db, session: sess}
}

func (a *authService) getUserRepo(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Login verifies the credentials and records the session on success. A
// mismatch of either field returns common.ErrorUnauthorized; which field was
// wrong is deliberately not revealed.
func (a *authService) Login(ctx context.Context, iin, password string) (*models.User, error) {
	user, err := a.getUserRepo(a.db).FindByCredentials(ctx, iin, password)
	if err != nil {
		return nil, fmt.Errorf("credentials lookup error: %w", err)
	}
	if user == nil {
		return nil, common.ErrorUnauthorized
	}

	if err := a.session.Save(user.IIN); err != nil {
		return nil, fmt.Errorf("session save error: %w", err)
	}
	return user, nil
}

// Register creates the account and seeds its grade rows in one transaction,
// then records the session. The course year is drawn randomly from 1..4 and
// one grade row is created per year 1..course with a uniform score 0..100.
func (a *authService) Register(ctx context.Context, name, iin, password string) (*models.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(iin) == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: name, iin and password are required", common.ErrorValidation)
	}

	existing, err := a.getUserRepo(a.db).FindByID(ctx, iin)
	if err != nil {
		return nil, fmt.Errorf("user lookup error: %w", err)
	}
	if existing != nil {
		return nil, common.ErrorAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	user := &models.User{
		IIN:          iin,
		Name:         name,
		PasswordHash: hash,
		Course:       randIntN(4) + 1,
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := users.NewSQLiteRepository(tx).Create(ctx, user); err != nil {
			return err
		}

		gradeRepo := grades.NewSQLiteRepository(tx)
		for course := 1; course <= user.Course; course++ {
			g := &models.Grade{UserIIN: user.IIN, Score: randIntN(101), Course: course}
			if err := gradeRepo.Create(ctx, g); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := a.session.Save(user.IIN); err != nil {
		return nil, fmt.Errorf("session save error: %w", err)
	}
	return user, nil
}

// Restore reads the session store once at process start. If a session is
// recorded, the user is looked up without re-verifying the password. A
// recorded user that no longer exists (e.g. the database was reset) clears
// the stale session and reports no user.
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	iin, ok := a.session.CurrentUserIIN()
	if !ok {
		return nil, nil
	}

	user, err := a.getUserRepo(a.db).FindByID(ctx, iin)
	if err != nil {
		return nil, fmt.Errorf("user lookup error: %w", err)
	}
	if user == nil {
		_ = a.session.Clear()
		return nil, nil
	}
	return user, nil
}

// Logout clears the session record.
func (a *authService) Logout() error {
	return a.session.Clear()
}

// DeleteAccount removes the user row; grades, goals, and portfolio items
// cascade away with it. The session is cleared afterwards.
func (a *authService) DeleteAccount(ctx context.Context, iin string) error {
	if err := a.getUserRepo(a.db).DeleteByID(ctx, iin); err != nil {
		return err
	}
	return a.session.Clear()
}
