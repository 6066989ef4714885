package accounts

import "context"

// Store is the account registry contract.
//
// Register returns common.ErrDuplicateIdentity when the identity is already
// taken; a failed attempt leaves the store unchanged. Verify returns
// common.ErrNotFound for an unknown identity and common.ErrBadCredential
// when the credential does not match.
type Store interface {
	Register(ctx context.Context, identity, credential string) (*Account, error)
	Verify(ctx context.Context, identity, credential string) (*Account, error)
}
