package state

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/noteverse/noteverse/internal/entity"
)

// Login scans the credential list for a case-insensitive username match and
// compares the password exactly. On success the session becomes the matching
// credential record minus its password. On failure the session is unchanged.
//
// Passwords are compared in cleartext. This is a demo authentication layer
// with no lockout, throttling, or retry logic.
func (c *Container) Login(username, password string) (entity.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		c.notifier.Error("Please fill in all fields")
		return entity.User{}, ErrFieldsRequired
	}

	c.mu.Lock()
	credentials := c.loadCredentials()
	var match *entity.Credential
	for i := range credentials {
		if strings.EqualFold(credentials[i].Username, username) {
			match = &credentials[i]
			break
		}
	}
	if match == nil || match.Password != password {
		c.mu.Unlock()
		c.notifier.Error("Invalid username or password")
		return entity.User{}, ErrInvalidCredentials
	}

	user := match.User()
	c.user = &user
	c.persist(keySession, user)
	c.mu.Unlock()

	c.notifier.Success("Login successful")
	c.publish(EventSessionChanged, user.ID)
	return user, nil
}

// Signup appends a new credential record unless the username is taken
// (case-insensitively) or the email is taken (case-sensitively), then logs
// the new user in.
func (c *Container) Signup(username, email, password string) (entity.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		c.notifier.Error("Please fill in all fields")
		return entity.User{}, ErrFieldsRequired
	}

	id, err := c.newID()
	if err != nil {
		return entity.User{}, err
	}

	c.mu.Lock()
	credentials := c.loadCredentials()
	for _, credential := range credentials {
		if strings.EqualFold(credential.Username, username) {
			c.mu.Unlock()
			c.notifier.Error("Username already exists")
			return entity.User{}, ErrUsernameTaken
		}
	}
	for _, credential := range credentials {
		if credential.Email == email {
			c.mu.Unlock()
			c.notifier.Error("Email already exists")
			return entity.User{}, ErrEmailTaken
		}
	}

	credential := entity.Credential{
		ID:       id,
		Username: username,
		Email:    email,
		Password: password,
	}
	credentials = append(credentials, credential)
	c.persist(keyUsers, credentials)

	user := credential.User()
	c.user = &user
	c.persist(keySession, user)
	c.mu.Unlock()

	c.notifier.Success("Account created successfully")
	c.publish(EventSessionChanged, user.ID)
	return user, nil
}

// Logout clears the session and removes its persisted key rather than
// writing an empty value.
func (c *Container) Logout() {
	c.mu.Lock()
	c.user = nil
	if err := c.store.Delete(keySession); err != nil {
		c.logger.Error("session delete failed", zap.Error(err))
	}
	c.mu.Unlock()

	c.notifier.Success("Logged out successfully")
	c.publish(EventSessionChanged)
}

// CurrentUser returns the session user, if any.
func (c *Container) CurrentUser() (entity.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return entity.User{}, false
	}
	return *c.user, true
}

// IsAuthenticated reports whether a session user is set.
func (c *Container) IsAuthenticated() bool {
	_, ok := c.CurrentUser()
	return ok
}

// loadCredentials reads the persisted credential list; an absent or malformed
// value yields an empty list. Callers must hold the container lock.
func (c *Container) loadCredentials() []entity.Credential {
	raw, ok, err := c.store.Get(keyUsers)
	if err != nil {
		c.logger.Warn("credentials load failed", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	var credentials []entity.Credential
	if json.Unmarshal([]byte(raw), &credentials) != nil {
		return nil
	}
	return credentials
}
