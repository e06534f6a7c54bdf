package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noteverse/noteverse/internal/state"
)

type uiUpdatePayload struct {
	ActiveCategory *string `json:"activeCategory"`
	ContentType    *string `json:"contentType"`
	ViewMode       *string `json:"viewMode"`
	SidebarOpen    *bool   `json:"sidebarOpen"`
}

type viewportPayload struct {
	Width int `json:"width"`
}

type editorPayload struct {
	Mode   string `json:"mode"`
	NoteID string `json:"noteId"`
}

func (h *httpHandler) handleGetUI(c *gin.Context) {
	c.JSON(http.StatusOK, h.container.UI())
}

func (h *httpHandler) handleUpdateUI(c *gin.Context) {
	var request uiUpdatePayload
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if request.ActiveCategory != nil {
		if err := h.container.SetActiveCategory(*request.ActiveCategory); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
			return
		}
	}
	if request.ContentType != nil {
		h.container.SetContentType(state.ContentType(*request.ContentType))
	}
	if request.ViewMode != nil {
		h.container.SetViewMode(state.ViewMode(*request.ViewMode))
	}
	if request.SidebarOpen != nil {
		h.container.SetSidebarOpen(*request.SidebarOpen)
	}

	c.JSON(http.StatusOK, h.container.UI())
}

func (h *httpHandler) handleViewport(c *gin.Context) {
	var request viewportPayload
	if err := c.ShouldBindJSON(&request); err != nil || request.Width <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	h.container.ObserveViewportWidth(request.Width)
	c.JSON(http.StatusOK, h.container.UI())
}

func (h *httpHandler) handleEditor(c *gin.Context) {
	var request editorPayload
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	switch state.EditorMode(request.Mode) {
	case state.EditorNew:
		h.container.EditNewNote()
	case state.EditorExisting:
		if !h.container.EditNote(request.NoteID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
			return
		}
	case state.EditorClosed:
		h.container.CloseEditor()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_editor_mode"})
		return
	}

	c.JSON(http.StatusOK, h.container.Editor())
}

func (h *httpHandler) handleCounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"counts": h.container.CategoryCounts()})
}

// handleEvents streams container change events as server-sent events.
func (h *httpHandler) handleEvents(c *gin.Context) {
	if h.events == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "events_disabled"})
		return
	}

	stream, cleanup := h.events.Subscribe(c.Request.Context())
	defer cleanup()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-stream:
			if !ok {
				return false
			}
			c.SSEvent(event.Kind, gin.H{
				"ids":       event.IDs,
				"timestamp": event.Timestamp,
			})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
