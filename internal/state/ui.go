package state

import "github.com/noteverse/noteverse/internal/entity"

// ContentType selects which entity kind the UI is browsing.
type ContentType string

const (
	// ContentNotes browses the notes collection.
	ContentNotes ContentType = "notes"
	// ContentImages browses the images collection.
	ContentImages ContentType = "images"
)

// ViewMode selects the list rendering style.
type ViewMode string

const (
	// ViewGrid renders items as cards.
	ViewGrid ViewMode = "grid"
	// ViewList renders items as rows.
	ViewList ViewMode = "list"
)

// EditorMode enumerates the note editor states.
type EditorMode string

const (
	// EditorClosed means no editor is open.
	EditorClosed EditorMode = "closed"
	// EditorNew means the editor is composing a new note.
	EditorNew EditorMode = "new"
	// EditorExisting means the editor has a specific note open.
	EditorExisting EditorMode = "existing"
)

// EditorState is the note editor selection. NoteID is set only in the
// editing-existing state.
type EditorState struct {
	Mode   EditorMode `json:"mode"`
	NoteID string     `json:"noteId,omitempty"`
}

// UISnapshot is a point-in-time copy of the UI selection state.
type UISnapshot struct {
	ActiveCategory entity.Category `json:"activeCategory"`
	ContentType    ContentType     `json:"contentType"`
	ViewMode       ViewMode        `json:"viewMode"`
	Editor         EditorState     `json:"editor"`
	SidebarOpen    bool            `json:"sidebarOpen"`
	SmallViewport  bool            `json:"smallViewport"`
}

// UI returns the current UI selection state.
func (c *Container) UI() UISnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return UISnapshot{
		ActiveCategory: c.activeCategory,
		ContentType:    c.contentType,
		ViewMode:       c.viewMode,
		Editor:         c.editor,
		SidebarOpen:    c.sidebarOpen,
		SmallViewport:  c.smallViewport,
	}
}

// SetActiveCategory switches the category filter. The sentinel "All" lifts
// the restriction.
func (c *Container) SetActiveCategory(raw string) error {
	category, err := entity.NewFilterCategory(raw)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.activeCategory = category
	c.mu.Unlock()
	c.publish(EventUIChanged)
	return nil
}

// SetContentType switches between browsing notes and images.
func (c *Container) SetContentType(contentType ContentType) {
	c.mu.Lock()
	if contentType == ContentNotes || contentType == ContentImages {
		c.contentType = contentType
	}
	c.mu.Unlock()
	c.publish(EventUIChanged)
}

// SetViewMode switches between grid and list rendering.
func (c *Container) SetViewMode(mode ViewMode) {
	c.mu.Lock()
	if mode == ViewGrid || mode == ViewList {
		c.viewMode = mode
	}
	c.mu.Unlock()
	c.publish(EventUIChanged)
}

// SetSidebarOpen opens or closes the sidebar.
func (c *Container) SetSidebarOpen(open bool) {
	c.mu.Lock()
	c.sidebarOpen = open
	c.mu.Unlock()
	c.publish(EventUIChanged)
}

// ObserveViewportWidth reclassifies the viewport on every resize. A small
// viewport forces the sidebar closed; growing back does not reopen it.
func (c *Container) ObserveViewportWidth(width int) {
	c.mu.Lock()
	c.smallViewport = width < smallViewportWidth
	if c.smallViewport {
		c.sidebarOpen = false
	}
	c.mu.Unlock()
	c.publish(EventUIChanged)
}

// EditNewNote opens the editor for a new note.
func (c *Container) EditNewNote() {
	c.mu.Lock()
	c.editor = EditorState{Mode: EditorNew}
	c.mu.Unlock()
	c.publish(EventUIChanged)
}

// EditNote opens the editor on an existing note.
func (c *Container) EditNote(id string) bool {
	c.mu.Lock()
	found := false
	for _, note := range c.notes {
		if note.ID == id {
			found = true
			break
		}
	}
	if found {
		c.editor = EditorState{Mode: EditorExisting, NoteID: id}
	}
	c.mu.Unlock()
	if found {
		c.publish(EventUIChanged)
	}
	return found
}

// CloseEditor closes the editor, on save or cancel alike.
func (c *Container) CloseEditor() {
	c.mu.Lock()
	c.editor = EditorState{Mode: EditorClosed}
	c.mu.Unlock()
	c.publish(EventUIChanged)
}

// Editor returns the current editor selection.
func (c *Container) Editor() EditorState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editor
}

// VisibleNotes returns the notes passing the active category filter, in
// collection order. Computed on demand, never cached.
func (c *Container) VisibleNotes() []entity.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return filterNotes(c.notes, c.activeCategory)
}

// VisibleImages returns the images passing the active category filter.
func (c *Container) VisibleImages() []entity.ImageItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return filterImages(c.images, c.activeCategory)
}

// NotesByCategory filters the notes collection by an explicit category.
func (c *Container) NotesByCategory(category entity.Category) []entity.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return filterNotes(c.notes, category)
}

// ImagesByCategory filters the images collection by an explicit category.
func (c *Container) ImagesByCategory(category entity.Category) []entity.ImageItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return filterImages(c.images, category)
}

// CategoryCounts reports, per filter category, how many items of the active
// content type it would show. The sidebar renders these.
func (c *Container) CategoryCounts() map[entity.Category]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	counts := make(map[entity.Category]int, len(entity.FilterCategories()))
	for _, category := range entity.FilterCategories() {
		switch c.contentType {
		case ContentImages:
			counts[category] = len(filterImages(c.images, category))
		default:
			counts[category] = len(filterNotes(c.notes, category))
		}
	}
	return counts
}

func filterNotes(notes []entity.Note, category entity.Category) []entity.Note {
	filtered := make([]entity.Note, 0, len(notes))
	for _, note := range notes {
		if category == entity.CategoryAll || note.Category == category {
			filtered = append(filtered, note)
		}
	}
	return filtered
}

func filterImages(images []entity.ImageItem, category entity.Category) []entity.ImageItem {
	filtered := make([]entity.ImageItem, 0, len(images))
	for _, image := range images {
		if category == entity.CategoryAll || image.Category == category {
			filtered = append(filtered, image)
		}
	}
	return filtered
}
