// Package sessions implements the session registry: an in-memory registry
// mapping opaque tokens to session metadata, with a lifecycle independent
// from accounts.
package sessions

import "time"

// Session represents a single authenticated login instance. Once Active
// becomes false it never becomes true again; a fresh sign-in produces a
// new session with a new token.
type Session struct {
	Token    string
	OwnerID  string
	IssuedAt time.Time
	Active   bool
}
