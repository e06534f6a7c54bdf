// Package storage provides the string-keyed persistent store backing the
// application state. It mirrors the contract of a browser's local storage:
// synchronous get/set/delete of string values under string keys.
package storage

// KV is the persistence collaborator for the state container. Values are
// JSON-encoded by callers; the store treats them as opaque strings.
type KV interface {
	// Get returns the value stored under key and whether the key is present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
