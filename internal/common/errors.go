// Package common defines shared constants and sentinel errors used across
// the authentication server and the health-check client. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrDuplicateIdentity = errors.New("duplicate identity")
	ErrNotFound          = errors.New("not found")
	ErrBadCredential     = errors.New("bad credential")

	// Service-level errors. ErrInvalidCredentials deliberately merges
	// ErrNotFound and ErrBadCredential so callers cannot tell whether an
	// identity exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSuchSession      = errors.New("no such session")
	ErrInternal           = errors.New("internal error")

	// Transport-level outcomes seen by the health-check client.
	ErrUnreachable = errors.New("unreachable")
	ErrTimeout     = errors.New("timeout")
)
