package accounts

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dkravtsov/authwatch/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Succeeds(t *testing.T) {
	s := NewMemoryStore()

	acc, err := s.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	assert.NotEmpty(t, acc.ID)
	assert.Equal(t, "alice", acc.Identity)
	assert.False(t, acc.CreatedAt.IsZero())
	assert.NotContains(t, string(acc.CredentialHash), "pw1")
}

func TestRegister_DuplicateLeavesStateUnchanged(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "alice", "pw2")
	require.ErrorIs(t, err, common.ErrDuplicateIdentity)

	// Original credential still verifies; the failed attempt changed nothing.
	acc, err := s.Verify(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, acc.ID)

	_, err = s.Verify(context.Background(), "alice", "pw2")
	assert.ErrorIs(t, err, common.ErrBadCredential)
}

func TestVerify_UnknownIdentity(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Verify(context.Background(), "nobody", "x")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestVerify_BadCredential(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	_, err = s.Verify(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrBadCredential)
}

func TestRegister_ConcurrentDistinctIdentities(t *testing.T) {
	s := NewMemoryStore()

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Register(context.Background(), fmt.Sprintf("user-%d", i), "pw")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "registration %d", i)
	}
}

func TestRegister_ConcurrentSameIdentity_ExactlyOneWins(t *testing.T) {
	s := NewMemoryStore()

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Register(context.Background(), "alice", "pw")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, common.ErrDuplicateIdentity)
		}
	}
	assert.Equal(t, 1, winners)
}
