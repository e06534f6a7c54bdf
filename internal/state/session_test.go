package state

import (
	"errors"
	"strings"
	"testing"
)

func TestSignupCreatesAccountAndLogsIn(t *testing.T) {
	fixture := newTestFixture(t)

	user, err := fixture.container.Signup("alice", "a@x.com", "Pw1!")
	if err != nil {
		t.Fatalf("unexpected signup error: %v", err)
	}
	if user.Username != "alice" || user.Email != "a@x.com" || user.ID == "" {
		t.Fatalf("unexpected user: %#v", user)
	}
	if !fixture.container.IsAuthenticated() {
		t.Fatalf("signup should log the new user in")
	}

	raw, ok, err := fixture.store.Get("noteverse-user")
	if err != nil || !ok {
		t.Fatalf("expected persisted session: %v present=%v", err, ok)
	}
	if strings.Contains(raw, "Pw1!") || strings.Contains(raw, "password") {
		t.Fatalf("session must never include the password: %s", raw)
	}
}

func TestSignupRejectsCaseInsensitiveUsernameCollision(t *testing.T) {
	fixture := newTestFixture(t)
	mustSignup(t, fixture.container, "alice", "a@x.com", "Pw1!")

	_, err := fixture.container.Signup("Alice", "b@y.com", "Pw2!")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// The second account is not created: its email stays free to log in with.
	if _, err := fixture.container.Login("Alice", "Pw2!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("rejected signup should not create an account, got %v", err)
	}
}

func TestSignupRejectsCaseSensitiveEmailCollision(t *testing.T) {
	fixture := newTestFixture(t)
	mustSignup(t, fixture.container, "alice", "a@x.com", "Pw1!")

	if _, err := fixture.container.Signup("bob", "a@x.com", "Pw2!"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Email uniqueness is case-sensitive: a different casing is a new email.
	if _, err := fixture.container.Signup("bob", "A@X.com", "Pw2!"); err != nil {
		t.Fatalf("differently cased email should be accepted, got %v", err)
	}
}

func TestLoginMatchesUsernameCaseInsensitively(t *testing.T) {
	fixture := newTestFixture(t)
	mustSignup(t, fixture.container, "alice", "a@x.com", "Pw1!")
	fixture.container.Logout()

	user, err := fixture.container.Login("ALICE", "Pw1!")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("session should hold the stored username, got %q", user.Username)
	}
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	fixture := newTestFixture(t)
	mustSignup(t, fixture.container, "alice", "a@x.com", "Pw1!")

	if _, err := fixture.container.Login("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	user, ok := fixture.container.CurrentUser()
	if !ok || user.Username != "alice" {
		t.Fatalf("existing session should be unchanged, got %#v ok=%v", user, ok)
	}

	if _, err := fixture.container.Login("nobody", "Pw1!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown username, got %v", err)
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	fixture := newTestFixture(t)

	if _, err := fixture.container.Login("", "pw"); !errors.Is(err, ErrFieldsRequired) {
		t.Fatalf("expected ErrFieldsRequired, got %v", err)
	}
	if _, err := fixture.container.Login("alice", ""); !errors.Is(err, ErrFieldsRequired) {
		t.Fatalf("expected ErrFieldsRequired, got %v", err)
	}
}

func TestLogoutDeletesPersistedSessionKey(t *testing.T) {
	fixture := newTestFixture(t)
	mustSignup(t, fixture.container, "alice", "a@x.com", "Pw1!")

	fixture.container.Logout()

	if fixture.container.IsAuthenticated() {
		t.Fatalf("expected session to be cleared")
	}
	_, ok, err := fixture.store.Get("noteverse-user")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatalf("logout should delete the session key, not write an empty value")
	}
}

func TestMalformedCredentialListTreatedAsEmpty(t *testing.T) {
	fixture := newTestFixture(t)
	if err := fixture.store.Set("noteverse-users", "{broken"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, err := fixture.container.Login("alice", "Pw1!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials over empty list, got %v", err)
	}
	if _, err := fixture.container.Signup("alice", "a@x.com", "Pw1!"); err != nil {
		t.Fatalf("signup should replace the malformed list, got %v", err)
	}
}
