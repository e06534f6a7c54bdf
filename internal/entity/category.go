package entity

import (
	"errors"
	"fmt"
)

// Category classifies a note or image.
type Category string

const (
	// CategoryAll is the filter sentinel meaning "no category restriction".
	// It is never a valid category on a stored entity.
	CategoryAll Category = "All"
	// CategoryPersonal tags personal content.
	CategoryPersonal Category = "Personal"
	// CategoryWork tags work content.
	CategoryWork Category = "Work"
	// CategoryIdeas tags ideas and inspiration.
	CategoryIdeas Category = "Ideas"
	// CategoryArchive tags archived content.
	CategoryArchive Category = "Archive"
)

// ErrInvalidCategory indicates a category value outside the known set, or the
// filter sentinel used where a stored category is required.
var ErrInvalidCategory = errors.New("entity: invalid category")

// EntityCategories lists the categories an entity may carry, excluding the
// filter sentinel.
func EntityCategories() []Category {
	return []Category{CategoryPersonal, CategoryWork, CategoryIdeas, CategoryArchive}
}

// FilterCategories lists the categories usable as a filter, the sentinel first.
func FilterCategories() []Category {
	return append([]Category{CategoryAll}, EntityCategories()...)
}

// NewEntityCategory validates raw input as a storable entity category.
func NewEntityCategory(rawInput string) (Category, error) {
	candidate := Category(rawInput)
	for _, known := range EntityCategories() {
		if candidate == known {
			return candidate, nil
		}
	}
	if candidate == CategoryAll {
		return "", fmt.Errorf("%w: %q is a filter sentinel, not a stored category", ErrInvalidCategory, rawInput)
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, rawInput)
}

// NewFilterCategory validates raw input as a filter value, accepting the
// sentinel.
func NewFilterCategory(rawInput string) (Category, error) {
	if Category(rawInput) == CategoryAll {
		return CategoryAll, nil
	}
	return NewEntityCategory(rawInput)
}

// String returns the underlying category name.
func (c Category) String() string {
	return string(c)
}
