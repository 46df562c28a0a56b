// Package token persists the session credential.
//
// The client keeps exactly one piece of local state: the opaque bearer
// token issued at login. Store abstracts where that single string lives so
// the real file-backed store and the in-memory test store are
// interchangeable.
package token

import "errors"

// ErrNotFound is returned by Load when no credential is stored.
var ErrNotFound = errors.New("no stored credential")

// Store holds a single opaque credential string.
//
// Implementations do not validate the token shape; an empty string saved is
// an empty string returned.
type Store interface {
	// Save persists the credential, replacing any previous one.
	Save(tok string) error
	// Load returns the stored credential, or ErrNotFound if absent.
	Load() (string, error)
	// Clear removes the credential. Clearing an absent credential is not
	// an error.
	Clear() error
}
