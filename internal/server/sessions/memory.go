package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dkravtsov/authwatch/internal/common"
)

// tokenByteSize is the number of random bytes per token. 32 bytes is 256
// bits of entropy, well above the 128-bit minimum.
const tokenByteSize = 32

// MemoryRegistry is a concurrency-safe in-memory Registry keyed by token.
// Inactive sessions are kept; a second Invalidate on the same token and an
// unknown token both report common.ErrNoSuchSession.
type MemoryRegistry struct {
	mu      sync.RWMutex
	byToken map[string]*Session
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{byToken: make(map[string]*Session)}
}

func (r *MemoryRegistry) Create(ctx context.Context, ownerID string) (*Session, error) {

	token, err := common.MakeRandHexString(tokenByteSize)
	if err != nil {
		return nil, common.ErrInternal
	}

	session := &Session{
		Token:    token,
		OwnerID:  ownerID,
		IssuedAt: time.Now(),
		Active:   true,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[token] = session

	return session, nil
}

func (r *MemoryRegistry) Invalidate(ctx context.Context, token string) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.byToken[token]
	if !ok || !session.Active {
		return common.ErrNoSuchSession
	}
	session.Active = false

	return nil
}

func (r *MemoryRegistry) IsActive(ctx context.Context, token string) bool {

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.byToken[token]
	return ok && session.Active
}
