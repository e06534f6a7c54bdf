package state

import (
	"errors"
	"testing"
	"time"

	"github.com/noteverse/noteverse/internal/entity"
)

func TestAddNoteAssignsIDAndPrepends(t *testing.T) {
	fixture := newTestFixture(t)

	note, err := fixture.container.AddNote(NoteFields{
		Title:    "T",
		Content:  "C",
		Category: entity.CategoryWork,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.ID == "" {
		t.Fatalf("expected a fresh id")
	}
	if note.Title != "T" || note.Content != "C" || note.Category != entity.CategoryWork {
		t.Fatalf("unexpected note fields: %#v", note)
	}
	if !note.CreatedAt.Equal(note.UpdatedAt) {
		t.Fatalf("createdAt and updatedAt should match on creation")
	}

	notes := fixture.container.Notes()
	if notes[0].ID != note.ID {
		t.Fatalf("new note should be the first element, got %q", notes[0].ID)
	}
	if len(fixture.recorder.Successes) == 0 || fixture.recorder.Successes[0] != "Note created successfully" {
		t.Fatalf("expected success notification, got %#v", fixture.recorder.Successes)
	}
}

func TestAddNoteDefaultsCategory(t *testing.T) {
	fixture := newTestFixture(t)

	note, err := fixture.container.AddNote(NoteFields{Title: "T"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.Category != entity.CategoryPersonal {
		t.Fatalf("expected default category, got %q", note.Category)
	}
}

func TestAddNoteRejectsBlankTitle(t *testing.T) {
	fixture := newTestFixture(t)
	before := len(fixture.container.Notes())

	_, err := fixture.container.AddNote(NoteFields{Title: "   ", Content: "C"})
	if !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if len(fixture.container.Notes()) != before {
		t.Fatalf("collection should be unchanged on validation failure")
	}
	if len(fixture.recorder.Errors) == 0 || fixture.recorder.Errors[0] != "Please enter a title" {
		t.Fatalf("expected error notification, got %#v", fixture.recorder.Errors)
	}
}

func TestAddNoteRejectsFilterSentinelCategory(t *testing.T) {
	fixture := newTestFixture(t)

	_, err := fixture.container.AddNote(NoteFields{Title: "T", Category: entity.CategoryAll})
	if !errors.Is(err, entity.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestAddNoteIDsStayUniqueAcrossSequences(t *testing.T) {
	fixture := newTestFixture(t)

	seen := make(map[string]bool)
	for _, note := range fixture.container.Notes() {
		seen[note.ID] = true
	}

	var lastID string
	for i := 0; i < 10; i++ {
		id := mustAddNote(t, fixture.container, NoteFields{Title: "T", Content: "C"})
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		lastID = id

		// A freshly returned id is immediately usable.
		if _, found := fixture.container.UpdateNote(id, NoteUpdate{}); !found {
			t.Fatalf("fresh id %q should be updatable", id)
		}
		if i%2 == 1 {
			if !fixture.container.DeleteNote(id) {
				t.Fatalf("fresh id %q should be deletable", id)
			}
		}
	}
	if lastID == "" {
		t.Fatalf("expected notes to be created")
	}
}

func TestUpdateNoteMergesOnlySpecifiedFields(t *testing.T) {
	fixture := newTestFixture(t)
	id := mustAddNote(t, fixture.container, NoteFields{
		Title:    "T",
		Content:  "C",
		Category: entity.CategoryWork,
	})
	original, _ := fixture.container.NoteByID(id)

	fixture.clock.Advance(time.Minute)
	newTitle := "T2"
	updated, found := fixture.container.UpdateNote(id, NoteUpdate{Title: &newTitle})
	if !found {
		t.Fatalf("expected note to be found")
	}
	if updated.Title != "T2" {
		t.Fatalf("title should update, got %q", updated.Title)
	}
	if updated.Content != "C" || updated.Category != entity.CategoryWork {
		t.Fatalf("unspecified fields should be untouched: %#v", updated)
	}
	if updated.ID != original.ID || !updated.CreatedAt.Equal(original.CreatedAt) {
		t.Fatalf("id and createdAt are immutable: %#v", updated)
	}
	if updated.UpdatedAt.Before(original.UpdatedAt) {
		t.Fatalf("updatedAt should be refreshed")
	}
}

func TestUpdateNoteUnknownIDIsSilentNoOp(t *testing.T) {
	fixture := newTestFixture(t)
	before := fixture.container.Notes()

	_, found := fixture.container.UpdateNote("missing", NoteUpdate{})
	if found {
		t.Fatalf("expected unknown id to report not found")
	}
	after := fixture.container.Notes()
	if len(after) != len(before) {
		t.Fatalf("collection should be unchanged")
	}
}

func TestDeleteNoteClearsOpenEditorSelection(t *testing.T) {
	fixture := newTestFixture(t)
	openID := mustAddNote(t, fixture.container, NoteFields{Title: "open"})
	otherID := mustAddNote(t, fixture.container, NoteFields{Title: "other"})

	if !fixture.container.EditNote(openID) {
		t.Fatalf("expected note to be editable")
	}

	// Deleting a note that is not open leaves the selection alone.
	if !fixture.container.DeleteNote(otherID) {
		t.Fatalf("expected delete to succeed")
	}
	editor := fixture.container.Editor()
	if editor.Mode != EditorExisting || editor.NoteID != openID {
		t.Fatalf("editor selection should be unchanged: %#v", editor)
	}

	// Deleting the open note clears the selection.
	if !fixture.container.DeleteNote(openID) {
		t.Fatalf("expected delete to succeed")
	}
	editor = fixture.container.Editor()
	if editor.Mode != EditorClosed || editor.NoteID != "" {
		t.Fatalf("editor should be closed after deleting the open note: %#v", editor)
	}
}

func TestDeleteNoteShrinksCollectionByAtMostOne(t *testing.T) {
	fixture := newTestFixture(t)
	id := mustAddNote(t, fixture.container, NoteFields{Title: "T"})
	before := len(fixture.container.Notes())

	if !fixture.container.DeleteNote(id) {
		t.Fatalf("expected delete to succeed")
	}
	if len(fixture.container.Notes()) != before-1 {
		t.Fatalf("collection should shrink by one")
	}
	if fixture.container.DeleteNote(id) {
		t.Fatalf("second delete should find nothing")
	}
	if len(fixture.container.Notes()) != before-1 {
		t.Fatalf("collection should be unchanged by a missed delete")
	}
}
