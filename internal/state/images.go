package state

import (
	"strings"

	"github.com/noteverse/noteverse/internal/entity"
)

// ImageFields carries the caller-supplied fields for image creation.
type ImageFields struct {
	Title    string
	URL      string
	Category entity.Category
}

// ImageUpdate carries a partial image update; nil fields are left unchanged.
type ImageUpdate struct {
	Title    *string
	URL      *string
	Category *entity.Category
}

// AddImage assigns a fresh id, stamps creation time, and prepends the image.
// Images carry no update timestamp.
func (c *Container) AddImage(fields ImageFields) (entity.ImageItem, error) {
	if strings.TrimSpace(fields.Title) == "" {
		c.notifier.Error("Please enter a title")
		return entity.ImageItem{}, ErrTitleRequired
	}
	if strings.TrimSpace(fields.URL) == "" {
		c.notifier.Error("Please upload an image")
		return entity.ImageItem{}, ErrURLRequired
	}

	category := fields.Category
	if category == "" {
		category = entity.CategoryPersonal
	}
	if _, err := entity.NewEntityCategory(category.String()); err != nil {
		c.notifier.Error("Please choose a valid category")
		return entity.ImageItem{}, err
	}

	id, err := c.newID()
	if err != nil {
		return entity.ImageItem{}, err
	}

	c.mu.Lock()
	image := entity.ImageItem{
		ID:        id,
		Title:     fields.Title,
		URL:       fields.URL,
		Category:  category,
		CreatedAt: c.clock().UTC(),
	}
	c.images = append([]entity.ImageItem{image}, c.images...)
	c.persist(keyImages, c.images)
	c.mu.Unlock()

	c.notifier.Success("Image added successfully")
	c.publish(EventImagesChanged, image.ID)
	return image, nil
}

// UpdateImage merges the partial fields into the matching image. Unlike
// notes, no timestamp is refreshed. An unknown id is a silent no-op.
func (c *Container) UpdateImage(id string, update ImageUpdate) (entity.ImageItem, bool) {
	if update.Category != nil {
		if _, err := entity.NewEntityCategory(update.Category.String()); err != nil {
			c.notifier.Error("Please choose a valid category")
			return entity.ImageItem{}, false
		}
	}

	c.mu.Lock()
	var updated entity.ImageItem
	found := false
	for i := range c.images {
		if c.images[i].ID != id {
			continue
		}
		if update.Title != nil {
			c.images[i].Title = *update.Title
		}
		if update.URL != nil {
			c.images[i].URL = *update.URL
		}
		if update.Category != nil {
			c.images[i].Category = *update.Category
		}
		updated = c.images[i]
		found = true
		break
	}
	if found {
		c.persist(keyImages, c.images)
	}
	c.mu.Unlock()

	if found {
		c.notifier.Success("Image updated successfully")
		c.publish(EventImagesChanged, id)
	}
	return updated, found
}

// DeleteImage removes the matching image.
func (c *Container) DeleteImage(id string) bool {
	c.mu.Lock()
	kept := c.images[:0]
	found := false
	for _, image := range c.images {
		if image.ID == id {
			found = true
			continue
		}
		kept = append(kept, image)
	}
	c.images = kept
	if found {
		c.persist(keyImages, c.images)
	}
	c.mu.Unlock()

	if found {
		c.notifier.Success("Image deleted successfully")
		c.publish(EventImagesChanged, id)
	}
	return found
}

// Images returns a copy of the full images collection, most recent first.
func (c *Container) Images() []entity.ImageItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.ImageItem(nil), c.images...)
}

// ImageByID returns the matching image.
func (c *Container) ImageByID(id string) (entity.ImageItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, image := range c.images {
		if image.ID == id {
			return image, true
		}
	}
	return entity.ImageItem{}, false
}
