package state

import (
	"strings"

	"github.com/noteverse/noteverse/internal/entity"
)

// NoteFields carries the caller-supplied fields for note creation. Category
// defaults to Personal when omitted.
type NoteFields struct {
	Title    string
	Content  string
	Category entity.Category
}

// NoteUpdate carries a partial note update; nil fields are left unchanged.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Category *entity.Category
}

// AddNote assigns a fresh id, stamps creation time, and prepends the note so
// the collection stays most-recent-first.
func (c *Container) AddNote(fields NoteFields) (entity.Note, error) {
	if strings.TrimSpace(fields.Title) == "" {
		c.notifier.Error("Please enter a title")
		return entity.Note{}, ErrTitleRequired
	}

	category := fields.Category
	if category == "" {
		category = entity.CategoryPersonal
	}
	if _, err := entity.NewEntityCategory(category.String()); err != nil {
		c.notifier.Error("Please choose a valid category")
		return entity.Note{}, err
	}

	id, err := c.newID()
	if err != nil {
		return entity.Note{}, err
	}

	c.mu.Lock()
	now := c.clock().UTC()
	note := entity.Note{
		ID:        id,
		Title:     fields.Title,
		Content:   fields.Content,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.notes = append([]entity.Note{note}, c.notes...)
	c.persist(keyNotes, c.notes)
	c.mu.Unlock()

	c.notifier.Success("Note created successfully")
	c.publish(EventNotesChanged, note.ID)
	return note, nil
}

// UpdateNote merges the partial fields into the matching note and refreshes
// its update timestamp. An unknown id is a silent no-op; the returned flag
// reports whether a note was found.
func (c *Container) UpdateNote(id string, update NoteUpdate) (entity.Note, bool) {
	if update.Category != nil {
		if _, err := entity.NewEntityCategory(update.Category.String()); err != nil {
			c.notifier.Error("Please choose a valid category")
			return entity.Note{}, false
		}
	}

	c.mu.Lock()
	var updated entity.Note
	found := false
	for i := range c.notes {
		if c.notes[i].ID != id {
			continue
		}
		if update.Title != nil {
			c.notes[i].Title = *update.Title
		}
		if update.Content != nil {
			c.notes[i].Content = *update.Content
		}
		if update.Category != nil {
			c.notes[i].Category = *update.Category
		}
		c.notes[i].UpdatedAt = c.clock().UTC()
		updated = c.notes[i]
		found = true
		break
	}
	if found {
		c.persist(keyNotes, c.notes)
	}
	c.mu.Unlock()

	if found {
		c.notifier.Success("Note updated successfully")
		c.publish(EventNotesChanged, id)
	}
	return updated, found
}

// DeleteNote removes the matching note. Deleting the note currently open in
// the editor also closes the editor.
func (c *Container) DeleteNote(id string) bool {
	c.mu.Lock()
	kept := c.notes[:0]
	found := false
	for _, note := range c.notes {
		if note.ID == id {
			found = true
			continue
		}
		kept = append(kept, note)
	}
	c.notes = kept
	if found {
		if c.editor.Mode == EditorExisting && c.editor.NoteID == id {
			c.editor = EditorState{Mode: EditorClosed}
		}
		c.persist(keyNotes, c.notes)
	}
	c.mu.Unlock()

	if found {
		c.notifier.Success("Note deleted successfully")
		c.publish(EventNotesChanged, id)
	}
	return found
}

// Notes returns a copy of the full notes collection, most recent first.
func (c *Container) Notes() []entity.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Note(nil), c.notes...)
}

// NoteByID returns the matching note.
func (c *Container) NoteByID(id string) (entity.Note, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, note := range c.notes {
		if note.ID == id {
			return note, true
		}
	}
	return entity.Note{}, false
}
