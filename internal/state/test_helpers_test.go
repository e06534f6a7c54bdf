package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/noteverse/noteverse/internal/notify"
	"github.com/noteverse/noteverse/internal/storage"
)

type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Unix(1700000000, 0).UTC()}
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type sequenceIDs struct {
	next int
}

func (s *sequenceIDs) NewID() (string, error) {
	s.next++
	return fmt.Sprintf("id-%d", s.next), nil
}

type testFixture struct {
	container *Container
	store     *storage.MemoryKV
	recorder  *notify.Recorder
	clock     *testClock
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	store := storage.NewMemoryKV()
	return newTestFixtureWithStore(t, store)
}

func newTestFixtureWithStore(t *testing.T, store *storage.MemoryKV) *testFixture {
	t.Helper()
	clock := newTestClock()
	recorder := notify.NewRecorder()
	container, err := NewContainer(ContainerConfig{
		Store:      store,
		Clock:      clock.Now,
		IDProvider: &sequenceIDs{},
		Notifier:   recorder,
	})
	if err != nil {
		t.Fatalf("failed to construct container: %v", err)
	}
	return &testFixture{container: container, store: store, recorder: recorder, clock: clock}
}

func mustAddNote(t *testing.T, container *Container, fields NoteFields) string {
	t.Helper()
	note, err := container.AddNote(fields)
	if err != nil {
		t.Fatalf("unexpected add note error: %v", err)
	}
	return note.ID
}

func mustSignup(t *testing.T, container *Container, username, email, password string) {
	t.Helper()
	if _, err := container.Signup(username, email, password); err != nil {
		t.Fatalf("unexpected signup error: %v", err)
	}
}
