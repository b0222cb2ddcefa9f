package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/kolbask4/CollegeActivityApp/internal/filex"
	"github.com/kolbask4/CollegeActivityApp/internal/models"
)

func (a *App) AddItem(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	categoryRaw, err := GetSimpleText(a.reader, "Category (project|certificate|diploma)", a.out)
	if err != nil {
		return err
	}
	category, err := models.ParseCategory(categoryRaw)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	date, err := GetDate(a.reader, "Date", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	tagsLine, err := GetSimpleText(a.reader, "Tags (comma-separated, empty for none)", a.out)
	if err != nil {
		return err
	}

	imagePath, err := GetSimpleText(a.reader, "Image file path (empty for none)", a.out)
	if err != nil {
		return err
	}
	var imageRef string
	if imagePath != "" {
		imageRef, err = filex.ImportImage(imagePath, a.config.DataDir)
		if err != nil {
			fmt.Fprintf(a.out, "Could not import image: %s\n", err.Error())
			return nil
		}
	}

	item := &models.PortfolioItem{
		UserIIN:     a.user.IIN,
		Title:       title,
		Description: description,
		Category:    category,
		ImageRef:    imageRef,
		Date:        date,
		Tags:        splitTags(tagsLine),
	}
	if err := a.portfolio.Create(ctx, item); err != nil {
		a.log.Error(ctx, "portfolio item creation failed", "err", err)
		return err
	}
	fmt.Fprintf(a.out, "Item [%d] added.\n", item.ID)
	return nil
}

// Portfolio lists the user's items, optionally filtered by category.
func (a *App) Portfolio(ctx context.Context) error {
	filter, err := GetSimpleText(a.reader, "Category filter (empty for all)", a.out)
	if err != nil {
		return err
	}

	var list []models.PortfolioItem
	if filter == "" {
		list, err = a.portfolio.ListByUser(ctx, a.user.IIN)
	} else {
		var category models.Category
		category, err = models.ParseCategory(filter)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return nil
		}
		list, err = a.portfolio.ListByUserAndCategory(ctx, a.user.IIN, category)
	}
	if err != nil {
		a.log.Error(ctx, "portfolio listing failed", "err", err)
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No portfolio items.")
		return nil
	}
	for _, item := range list {
		fmt.Fprintf(a.out, "[%d] %s (%s, %s)\n",
			item.ID, item.Title, item.Category, item.Date.Format("2006-01-02"))
		if len(item.Tags) > 0 {
			fmt.Fprintf(a.out, "      tags: %s\n", strings.Join(item.Tags, ", "))
		}
		if item.ImageRef != "" {
			fmt.Fprintf(a.out, "      image: %s\n", item.ImageRef)
		}
	}
	return nil
}

func (a *App) DeleteItem(ctx context.Context) error {
	id, err := GetInt(a.reader, "Item id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	if err := a.portfolio.DeleteByID(ctx, int64(id)); err != nil {
		a.log.Error(ctx, "portfolio item deletion failed", "err", err)
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
