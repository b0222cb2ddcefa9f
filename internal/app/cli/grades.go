package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kolbask4/CollegeActivityApp/internal/common"
)

func (a *App) Grades(ctx context.Context) error {
	list, err := a.grades.ListByUser(ctx, a.user.IIN)
	if err != nil {
		a.log.Error(ctx, "grades listing failed", "err", err)
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No grades yet.")
		return nil
	}
	for _, g := range list {
		fmt.Fprintf(a.out, "[%d] course %d: %d/100\n", g.ID, g.Course, g.Score)
	}
	return nil
}

func (a *App) UpdateScore(ctx context.Context) error {
	id, err := GetInt(a.reader, "Grade id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	score, err := GetInt(a.reader, "New score (0-100)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	if err := a.grades.UpdateScore(ctx, int64(id), score); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			fmt.Fprintln(a.out, "Score must be between 0 and 100.")
			return nil
		}
		a.log.Error(ctx, "score update failed", "err", err)
		return err
	}
	fmt.Fprintln(a.out, "Saved.")
	return nil
}
