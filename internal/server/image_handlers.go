package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noteverse/noteverse/internal/entity"
	"github.com/noteverse/noteverse/internal/state"
	"github.com/noteverse/noteverse/internal/upload"
)

type imagePayload struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

type imageUpdatePayload struct {
	Title    *string `json:"title"`
	URL      *string `json:"url"`
	Category *string `json:"category"`
}

func (h *httpHandler) handleListImages(c *gin.Context) {
	rawCategory := c.Query("category")
	if rawCategory == "" {
		c.JSON(http.StatusOK, gin.H{"images": h.container.VisibleImages()})
		return
	}
	category, err := entity.NewFilterCategory(rawCategory)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": h.container.ImagesByCategory(category)})
}

func (h *httpHandler) handleCreateImage(c *gin.Context) {
	var request imagePayload
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	image, err := h.container.AddImage(state.ImageFields{
		Title:    request.Title,
		URL:      request.URL,
		Category: entity.Category(request.Category),
	})
	if err != nil {
		h.respondImageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *httpHandler) handleUpdateImage(c *gin.Context) {
	var request imageUpdatePayload
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	update := state.ImageUpdate{Title: request.Title, URL: request.URL}
	if request.Category != nil {
		category, err := entity.NewEntityCategory(*request.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
			return
		}
		update.Category = &category
	}

	image, found := h.container.UpdateImage(c.Param("id"), update)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "image_not_found"})
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *httpHandler) handleDeleteImage(c *gin.Context) {
	if !h.container.DeleteImage(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "image_not_found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// handleUploadImage accepts a multipart image file, reads it into a data URI
// through the one-shot upload reader, and stores the result as a new image.
func (h *httpHandler) handleUploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("upload open failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload_failed"})
		return
	}
	defer file.Close()

	result := <-upload.Read(file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	switch {
	case errors.Is(result.Err, upload.ErrNotImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "not_an_image"})
		return
	case errors.Is(result.Err, upload.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image_too_large"})
		return
	case result.Err != nil:
		h.logger.Error("upload read failed", zap.Error(result.Err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload_failed"})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = result.Title
	}

	image, err := h.container.AddImage(state.ImageFields{
		Title:    title,
		URL:      result.DataURI,
		Category: entity.Category(c.PostForm("category")),
	})
	if err != nil {
		h.respondImageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *httpHandler) respondImageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, state.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "title_required"})
	case errors.Is(err, state.ErrURLRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "url_required"})
	case errors.Is(err, entity.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
	default:
		h.logger.Error("image operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image_failed"})
	}
}
