package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kolbask4/CollegeActivityApp/internal/common"
	"github.com/kolbask4/CollegeActivityApp/internal/models"
)

func (a *App) AddGoal(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	deadline, err := GetDate(a.reader, "Deadline", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	goal := &models.Goal{
		UserIIN:     a.user.IIN,
		Title:       title,
		Description: description,
		Deadline:    deadline,
	}
	if err := a.goals.Create(ctx, goal); err != nil {
		a.log.Error(ctx, "goal creation failed", "err", err)
		return err
	}
	fmt.Fprintf(a.out, "Goal [%d] added.\n", goal.ID)
	return nil
}

func (a *App) Goals(ctx context.Context) error {
	list, err := a.goals.ListByUser(ctx, a.user.IIN)
	if err != nil {
		a.log.Error(ctx, "goals listing failed", "err", err)
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No goals yet.")
		return nil
	}
	for _, g := range list {
		status := " "
		if g.Completed {
			status = "x"
		}
		fmt.Fprintf(a.out, "[%d] (%s) %s: %d%%, due %s\n",
			g.ID, status, g.Title, g.Progress, g.Deadline.Format("2006-01-02"))
		if g.MentorComment != "" {
			fmt.Fprintf(a.out, "      mentor: %s\n", g.MentorComment)
		}
	}
	return nil
}

// EditGoal prompts for a goal id and replaces its progress. The completion
// flag is left untouched; reaching 100% is not completion.
func (a *App) EditGoal(ctx context.Context) error {
	goal, err := a.pickGoal(ctx)
	if err != nil || goal == nil {
		return err
	}

	progress, err := GetInt(a.reader, "Progress (0-100)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	goal.Progress = progress
	if err := a.goals.Update(ctx, goal); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			fmt.Fprintln(a.out, "Progress must be between 0 and 100.")
			return nil
		}
		a.log.Error(ctx, "goal update failed", "err", err)
		return err
	}
	fmt.Fprintln(a.out, "Saved.")
	return nil
}

func (a *App) CompleteGoal(ctx context.Context) error {
	goal, err := a.pickGoal(ctx)
	if err != nil || goal == nil {
		return err
	}

	goal.Completed = true
	if err := a.goals.Update(ctx, goal); err != nil {
		a.log.Error(ctx, "goal update failed", "err", err)
		return err
	}
	fmt.Fprintln(a.out, "Marked completed.")
	return nil
}

func (a *App) DeleteGoal(ctx context.Context) error {
	id, err := GetInt(a.reader, "Goal id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	if err := a.goals.DeleteByID(ctx, int64(id)); err != nil {
		a.log.Error(ctx, "goal deletion failed", "err", err)
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// pickGoal prompts for an id and returns the matching goal owned by the
// current user, or nil (with a message) when there is none.
func (a *App) pickGoal(ctx context.Context) (*models.Goal, error) {
	id, err := GetInt(a.reader, "Goal id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil, nil
	}

	list, err := a.goals.ListByUser(ctx, a.user.IIN)
	if err != nil {
		a.log.Error(ctx, "goals listing failed", "err", err)
		return nil, err
	}
	for i := range list {
		if list[i].ID == int64(id) {
			return &list[i], nil
		}
	}
	fmt.Fprintln(a.out, "No such goal.")
	return nil, nil
}
