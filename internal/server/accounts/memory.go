package accounts

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dkravtsov/authwatch/internal/common"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemoryStore is a concurrency-safe in-memory Store keyed by identity.
// State lives only for the process lifetime.
type MemoryStore struct {
	mu       sync.RWMutex
	byIdent  map[string]*Account
	hashCost int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byIdent:  make(map[string]*Account),
		hashCost: bcrypt.DefaultCost,
	}
}

func (s *MemoryStore) Register(ctx context.Context, identity, credential string) (*Account, error) {

	// Hash outside the lock; bcrypt is deliberately slow.
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), s.hashCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	acc := &Account{
		ID:             uuid.NewString(),
		Identity:       identity,
		CredentialHash: hash,
		CreatedAt:      time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Duplicate check and insert under the same lock, so concurrent
	// registrations of the same identity cannot both win.
	if _, ok := s.byIdent[identity]; ok {
		return nil, common.ErrDuplicateIdentity
	}
	s.byIdent[identity] = acc

	return acc, nil
}

func (s *MemoryStore) Verify(ctx context.Context, identity, credential string) (*Account, error) {

	s.mu.RLock()
	acc, ok := s.byIdent[identity]
	s.mu.RUnlock()

	if !ok {
		return nil, common.ErrNotFound
	}

	// Constant-time comparison relative to credential length.
	if err := bcrypt.CompareHashAndPassword(acc.CredentialHash, []byte(credential)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, common.ErrBadCredential
		}
		return nil, common.ErrInternal
	}

	return acc, nil
}
