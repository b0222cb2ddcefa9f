package models

import (
	"fmt"
	"time"
)

// Category classifies a portfolio item.
type Category string

const (
	CategoryProject     Category = "project"
	CategoryCertificate Category = "certificate"
	CategoryDiploma     Category = "diploma"
)

// ParseCategory converts a raw string into a Category, rejecting unknown values.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryProject, CategoryCertificate, CategoryDiploma:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown portfolio category %q", s)
}

// PortfolioItem is an achievement record (project, certificate, or diploma)
// owned by a user.
type PortfolioItem struct {
	ID      int64
	UserIIN string

	Title       string
	Description string
	Category    Category

	// ImageRef points to a locally stored image, relative to the data
	// directory; empty when the item has no image.
	ImageRef string

	// Date is when the achievement was obtained.
	Date time.Time

	// Tags is an ordered list of free-text labels. Order is preserved
	// across storage round trips.
	Tags []string
}
