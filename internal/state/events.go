package state

import (
	"context"
	"sync"
	"time"
)

// Event kinds published by the container.
const (
	EventNotesChanged   = "notes-changed"
	EventImagesChanged  = "images-changed"
	EventSessionChanged = "session-changed"
	EventUIChanged      = "ui-changed"
)

// Event announces a container mutation to observing presentation surfaces.
type Event struct {
	Kind      string
	IDs       []string
	Timestamp time.Time
}

// Dispatcher fans container events out to subscribers. Slow subscribers drop
// events rather than blocking mutations.
type Dispatcher struct {
	mu          sync.RWMutex
	subscribers map[int64]chan Event
	nextID      int64
	bufferSize  int
}

// NewDispatcher constructs an event dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		subscribers: make(map[int64]chan Event),
		bufferSize:  16,
	}
}

// Subscribe registers a listener and returns its stream plus a cleanup
// function. The subscription also ends when ctx is done.
func (d *Dispatcher) Subscribe(ctx context.Context) (<-chan Event, func()) {
	stream := make(chan Event, d.bufferSize)

	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.subscribers[id] = stream
	d.mu.Unlock()

	cleanup := func() {
		d.mu.Lock()
		delete(d.subscribers, id)
		d.mu.Unlock()
	}
	go func() {
		<-ctx.Done()
		cleanup()
	}()
	return stream, cleanup
}

// Publish delivers the event to every subscriber without blocking.
func (d *Dispatcher) Publish(event Event) {
	if event.Kind == "" {
		return
	}
	d.mu.RLock()
	streams := make([]chan Event, 0, len(d.subscribers))
	for _, stream := range d.subscribers {
		streams = append(streams, stream)
	}
	d.mu.RUnlock()

	for _, stream := range streams {
		select {
		case stream <- event:
		default:
		}
	}
}
