// Package state holds the application state container: the single source of
// truth for notes, images, the current session, and UI selection state. All
// presentation surfaces observe and mutate the one container instance; every
// mutation is synchronized to the persistent key/value store.
package state

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noteverse/noteverse/internal/entity"
	"github.com/noteverse/noteverse/internal/notify"
	"github.com/noteverse/noteverse/internal/storage"
)

// Persistent store keys. Values are JSON-encoded; a malformed value under any
// key is treated as absent and replaced by defaults on the next load.
const (
	keyNotes   = "noteverse-notes"
	keyImages  = "noteverse-images"
	keySession = "noteverse-user"
	keyUsers   = "noteverse-users"
)

// Viewports narrower than this are classified small; a small viewport forces
// the sidebar closed.
const smallViewportWidth = 768

var (
	errMissingStore = errors.New("persistent store is required")
	noOpLogger      = zap.NewNop()

	// ErrTitleRequired indicates an empty title on note or image creation.
	ErrTitleRequired = errors.New("state: title is required")
	// ErrURLRequired indicates an empty url on image creation.
	ErrURLRequired = errors.New("state: image url is required")
	// ErrFieldsRequired indicates a blank authentication field.
	ErrFieldsRequired = errors.New("state: all fields are required")
	// ErrUsernameTaken indicates a case-insensitive username collision at signup.
	ErrUsernameTaken = errors.New("state: username already exists")
	// ErrEmailTaken indicates a case-sensitive email collision at signup.
	ErrEmailTaken = errors.New("state: email already exists")
	// ErrInvalidCredentials indicates an unknown username or wrong password.
	ErrInvalidCredentials = errors.New("state: invalid username or password")
)

// IDProvider issues unique identifiers for new entities.
type IDProvider interface {
	NewID() (string, error)
}

// ContainerConfig describes the dependencies of the state container.
type ContainerConfig struct {
	Store      storage.KV
	Clock      func() time.Time
	IDProvider IDProvider
	Logger     *zap.Logger
	Notifier   notify.Notifier
	Events     *Dispatcher
}

// Container owns the entity collections, the session, and the UI selection
// state for the lifetime of the running application. Consumers hold only a
// reference to the container, never authoritative copies.
type Container struct {
	mu       sync.Mutex
	store    storage.KV
	clock    func() time.Time
	ids      IDProvider
	logger   *zap.Logger
	notifier notify.Notifier
	events   *Dispatcher

	notes  []entity.Note
	images []entity.ImageItem
	user   *entity.User

	activeCategory entity.Category
	contentType    ContentType
	viewMode       ViewMode
	editor         EditorState
	sidebarOpen    bool
	smallViewport  bool
}

// NewContainer constructs the container and loads persisted state, falling
// back to seed data where a key is absent or its value fails to parse.
func NewContainer(cfg ContainerConfig) (*Container, error) {
	if cfg.Store == nil {
		return nil, errMissingStore
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	ids := cfg.IDProvider
	if ids == nil {
		ids = NewUUIDProvider()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = noOpLogger
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.NewZapNotifier(logger)
	}

	container := &Container{
		store:    cfg.Store,
		clock:    clock,
		ids:      ids,
		logger:   logger,
		notifier: notifier,
		events:   cfg.Events,

		activeCategory: entity.CategoryAll,
		contentType:    ContentNotes,
		viewMode:       ViewGrid,
		editor:         EditorState{Mode: EditorClosed},
		sidebarOpen:    true,
	}

	container.loadNotes()
	container.loadImages()
	container.loadSession()

	return container, nil
}

func (c *Container) loadNotes() {
	raw, ok, err := c.store.Get(keyNotes)
	if err == nil && ok {
		var notes []entity.Note
		if json.Unmarshal([]byte(raw), &notes) == nil {
			c.notes = notes
			return
		}
	}
	if err != nil {
		c.logger.Warn("notes load failed, using seed data", zap.Error(err))
	}
	c.notes = entity.SeedNotes(c.clock())
}

func (c *Container) loadImages() {
	raw, ok, err := c.store.Get(keyImages)
	if err == nil && ok {
		var images []entity.ImageItem
		if json.Unmarshal([]byte(raw), &images) == nil {
			c.images = images
			return
		}
	}
	if err != nil {
		c.logger.Warn("images load failed, using seed data", zap.Error(err))
	}
	c.images = entity.SeedImages(c.clock())
}

func (c *Container) loadSession() {
	raw, ok, err := c.store.Get(keySession)
	if err != nil || !ok {
		return
	}
	var user entity.User
	if json.Unmarshal([]byte(raw), &user) != nil {
		return
	}
	c.user = &user
}

// persist serializes value under key. Failures are logged and otherwise
// ignored: persistence is fire-and-forget at this layer.
func (c *Container) persist(key string, value any) {
	encoded, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("state serialization failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(key, string(encoded)); err != nil {
		c.logger.Error("state write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Container) publish(kind string, ids ...string) {
	if c.events == nil {
		return
	}
	c.events.Publish(Event{Kind: kind, IDs: ids, Timestamp: c.clock().UTC()})
}

func (c *Container) newID() (string, error) {
	id, err := c.ids.NewID()
	if err != nil {
		c.logger.Error("id generation failed", zap.Error(err))
		return "", err
	}
	return id, nil
}
