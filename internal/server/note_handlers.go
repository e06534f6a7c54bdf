package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/noteverse/noteverse/internal/entity"
	"github.com/noteverse/noteverse/internal/state"
)

var markdown = goldmark.New()

type notePayload struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type noteUpdatePayload struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

func (h *httpHandler) handleListNotes(c *gin.Context) {
	rawCategory := c.Query("category")
	if rawCategory == "" {
		c.JSON(http.StatusOK, gin.H{"notes": h.container.VisibleNotes()})
		return
	}
	category, err := entity.NewFilterCategory(rawCategory)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": h.container.NotesByCategory(category)})
}

func (h *httpHandler) handleCreateNote(c *gin.Context) {
	var request notePayload
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	note, err := h.container.AddNote(state.NoteFields{
		Title:    request.Title,
		Content:  request.Content,
		Category: entity.Category(request.Category),
	})
	switch {
	case errors.Is(err, state.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "title_required"})
		return
	case errors.Is(err, entity.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
		return
	case err != nil:
		h.logger.Error("note creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "note_create_failed"})
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (h *httpHandler) handleUpdateNote(c *gin.Context) {
	var request noteUpdatePayload
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	update := state.NoteUpdate{Title: request.Title, Content: request.Content}
	if request.Category != nil {
		category, err := entity.NewEntityCategory(*request.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
			return
		}
		update.Category = &category
	}

	note, found := h.container.UpdateNote(c.Param("id"), update)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *httpHandler) handleDeleteNote(c *gin.Context) {
	if !h.container.DeleteNote(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// handleNotePreview renders the note content as HTML for display.
func (h *httpHandler) handleNotePreview(c *gin.Context) {
	note, found := h.container.NoteByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
		return
	}

	var rendered bytes.Buffer
	if err := markdown.Convert([]byte(note.Content), &rendered); err != nil {
		h.logger.Error("markdown rendering failed", zap.String("note_id", note.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    note.ID,
		"title": note.Title,
		"html":  rendered.String(),
	})
}
