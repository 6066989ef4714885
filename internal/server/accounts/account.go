// Package accounts implements the account store: an in-memory registry
// mapping a unique identity to a credential hash and account metadata.
package accounts

import "time"

// Account is a registered user identity. CredentialHash holds a bcrypt
// digest; the raw credential is never stored.
type Account struct {
	ID             string
	Identity       string
	CredentialHash []byte
	CreatedAt      time.Time
}
