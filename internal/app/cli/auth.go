package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kolbask4/CollegeActivityApp/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	iin, err := GetSimpleText(a.reader, "Enter IIN", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, iin, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "Invalid IIN or password.")
			return nil
		}
		a.log.Error(ctx, "login failed", "err", err)
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	iin, err := GetSimpleText(a.reader, "Enter IIN", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, name, iin, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			fmt.Fprintln(a.out, "All fields are required.")
			return nil
		case errors.Is(err, common.ErrorAlreadyExists):
			fmt.Fprintln(a.out, "Account already exists.")
			return nil
		}
		a.log.Error(ctx, "registration failed", "err", err)
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Registered, course %d. Welcome, %s!\n", user.Course, user.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(); err != nil {
		a.log.Error(ctx, "logout failed", "err", err)
		return err
	}
	a.user = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	fmt.Fprintf(a.out, "%s (IIN %s), course %d\n", a.user.Name, a.user.IIN, a.user.Course)
	return nil
}

func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Delete the account and ALL its records? Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.auth.DeleteAccount(ctx, a.user.IIN); err != nil {
		a.log.Error(ctx, "account deletion failed", "err", err)
		return err
	}
	a.user = nil
	fmt.Fprintln(a.out, "Account deleted.")
	return nil
}
