package sessions

import "context"

// Registry is the session registry contract.
//
// Create issues a fresh random token for the given owner. Invalidate marks
// the session inactive and returns common.ErrNoSuchSession when the token is
// unknown or already inactive; failing twice on the same token is expected
// behavior, not a fault.
type Registry interface {
	Create(ctx context.Context, ownerID string) (*Session, error)
	Invalidate(ctx context.Context, token string) error
	IsActive(ctx context.Context, token string) bool
}
