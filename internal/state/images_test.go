package state

import (
	"errors"
	"testing"
	"time"

	"github.com/noteverse/noteverse/internal/entity"
)

func TestAddImageAssignsIDAndPrepends(t *testing.T) {
	fixture := newTestFixture(t)

	image, err := fixture.container.AddImage(ImageFields{
		Title:    "Sunset",
		URL:      "data:image/png;base64,AQID",
		Category: entity.CategoryPersonal,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if image.ID == "" {
		t.Fatalf("expected a fresh id")
	}
	images := fixture.container.Images()
	if images[0].ID != image.ID {
		t.Fatalf("new image should be the first element")
	}
}

func TestAddImageRequiresTitleAndURL(t *testing.T) {
	fixture := newTestFixture(t)

	if _, err := fixture.container.AddImage(ImageFields{URL: "u"}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := fixture.container.AddImage(ImageFields{Title: "t"}); !errors.Is(err, ErrURLRequired) {
		t.Fatalf("expected ErrURLRequired, got %v", err)
	}
}

func TestUpdateImageDoesNotTouchCreatedAt(t *testing.T) {
	fixture := newTestFixture(t)
	image, err := fixture.container.AddImage(ImageFields{Title: "t", URL: "u"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fixture.clock.Advance(time.Hour)
	newTitle := "renamed"
	updated, found := fixture.container.UpdateImage(image.ID, ImageUpdate{Title: &newTitle})
	if !found {
		t.Fatalf("expected image to be found")
	}
	if updated.Title != "renamed" || updated.URL != "u" {
		t.Fatalf("unexpected merge result: %#v", updated)
	}
	if !updated.CreatedAt.Equal(image.CreatedAt) {
		t.Fatalf("images carry no update timestamp; createdAt must not move")
	}
}

func TestDeleteImageRemovesMatch(t *testing.T) {
	fixture := newTestFixture(t)
	image, err := fixture.container.AddImage(ImageFields{Title: "t", URL: "u"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := len(fixture.container.Images())

	if !fixture.container.DeleteImage(image.ID) {
		t.Fatalf("expected delete to succeed")
	}
	if len(fixture.container.Images()) != before-1 {
		t.Fatalf("collection should shrink by one")
	}
	if fixture.container.DeleteImage(image.ID) {
		t.Fatalf("second delete should find nothing")
	}
}
