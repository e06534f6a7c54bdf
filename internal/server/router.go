package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noteverse/noteverse/internal/auth"
	"github.com/noteverse/noteverse/internal/entity"
	"github.com/noteverse/noteverse/internal/state"
)

const userIDContextKey = "noteverse_user_id"

var (
	errMissingContainer     = errors.New("state container dependency required")
	errMissingTokenManager  = errors.New("token manager dependency required")
	errInvalidAuthorization = errors.New("authorization header missing or invalid")
)

// SessionTokenManager issues and validates the bearer tokens representing a
// logged-in session.
type SessionTokenManager interface {
	IssueSessionToken(user entity.User) (string, int64, error)
	ValidateToken(token string) (auth.SessionClaims, error)
}

// Dependencies wires the HTTP surface to the state container.
type Dependencies struct {
	Container *state.Container
	Tokens    SessionTokenManager
	Events    *state.Dispatcher
	Logger    *zap.Logger
}

// NewHTTPHandler assembles the gin router over the state container.
func NewHTTPHandler(deps Dependencies) (http.Handler, error) {
	if deps.Container == nil {
		return nil, errMissingContainer
	}
	if deps.Tokens == nil {
		return nil, errMissingTokenManager
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodPut, http.MethodOptions},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	handler := &httpHandler{
		container: deps.Container,
		tokens:    deps.Tokens,
		events:    deps.Events,
		logger:    logger,
	}

	router.POST("/auth/signup", handler.handleSignup)
	router.POST("/auth/login", handler.handleLogin)

	protected := router.Group("/")
	protected.Use(handler.authorizeRequest)
	protected.POST("/auth/logout", handler.handleLogout)

	protected.GET("/notes", handler.handleListNotes)
	protected.POST("/notes", handler.handleCreateNote)
	protected.PATCH("/notes/:id", handler.handleUpdateNote)
	protected.DELETE("/notes/:id", handler.handleDeleteNote)
	protected.GET("/notes/:id/preview", handler.handleNotePreview)

	protected.GET("/images", handler.handleListImages)
	protected.POST("/images", handler.handleCreateImage)
	protected.PATCH("/images/:id", handler.handleUpdateImage)
	protected.DELETE("/images/:id", handler.handleDeleteImage)
	protected.POST("/images/upload", handler.handleUploadImage)

	protected.GET("/ui", handler.handleGetUI)
	protected.PUT("/ui", handler.handleUpdateUI)
	protected.POST("/ui/viewport", handler.handleViewport)
	protected.POST("/ui/editor", handler.handleEditor)
	protected.GET("/counts", handler.handleCounts)
	protected.GET("/events", handler.handleEvents)

	return router, nil
}

type httpHandler struct {
	container *state.Container
	tokens    SessionTokenManager
	events    *state.Dispatcher
	logger    *zap.Logger
}

func (h *httpHandler) authorizeRequest(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errInvalidAuthorization.Error()})
		return
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errInvalidAuthorization.Error()})
		return
	}
	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		h.logger.Warn("token validation failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set(userIDContextKey, claims.Subject)
	c.Next()
}
