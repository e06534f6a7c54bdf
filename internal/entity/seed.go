package entity

import "time"

// SeedNotes returns the welcome notes installed when no persisted notes exist.
// The second note is backdated one day so the collections start in
// most-recent-first order.
func SeedNotes(now time.Time) []Note {
	yesterday := now.Add(-24 * time.Hour)
	return []Note{
		{
			ID:        "note-1",
			Title:     "Welcome to Noteverse",
			Content:   "This is your personal space for thoughts, ideas, and inspiration. Start by creating a new note or uploading an image.",
			Category:  CategoryPersonal,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "note-2",
			Title:     "Getting Started",
			Content:   "Click on the + button to create a new note or upload an image. You can organize your content using categories.",
			Category:  CategoryIdeas,
			CreatedAt: yesterday,
			UpdatedAt: yesterday,
		},
	}
}

// SeedImages returns the placeholder image installed when no persisted images
// exist.
func SeedImages(now time.Time) []ImageItem {
	return []ImageItem{
		{
			ID:        "image-1",
			Title:     "Inspiration",
			URL:       "/placeholder.svg",
			Category:  CategoryIdeas,
			CreatedAt: now,
		},
	}
}
