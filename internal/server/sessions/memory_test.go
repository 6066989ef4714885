package sessions

import (
	"context"
	"testing"

	"github.com/dkravtsov/authwatch/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_IssuesUniqueTokens(t *testing.T) {
	r := NewMemoryRegistry()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		s, err := r.Create(context.Background(), "owner-1")
		require.NoError(t, err)
		require.Len(t, s.Token, tokenByteSize*2)
		if _, ok := seen[s.Token]; ok {
			t.Fatalf("token issued twice: %s", s.Token)
		}
		seen[s.Token] = struct{}{}
	}
}

func TestCreate_SessionIsActive(t *testing.T) {
	r := NewMemoryRegistry()

	s, err := r.Create(context.Background(), "owner-1")
	require.NoError(t, err)

	assert.True(t, s.Active)
	assert.Equal(t, "owner-1", s.OwnerID)
	assert.False(t, s.IssuedAt.IsZero())
	assert.True(t, r.IsActive(context.Background(), s.Token))
}

func TestInvalidate_UnknownToken(t *testing.T) {
	r := NewMemoryRegistry()

	err := r.Invalidate(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, common.ErrNoSuchSession)
}

func TestInvalidate_SecondCallFails(t *testing.T) {
	r := NewMemoryRegistry()

	s, err := r.Create(context.Background(), "owner-1")
	require.NoError(t, err)

	require.NoError(t, r.Invalidate(context.Background(), s.Token))
	assert.False(t, r.IsActive(context.Background(), s.Token))

	// Terminated is terminal: the same token never invalidates twice and
	// never becomes active again.
	err = r.Invalidate(context.Background(), s.Token)
	assert.ErrorIs(t, err, common.ErrNoSuchSession)
	assert.False(t, r.IsActive(context.Background(), s.Token))
}

func TestIsActive_UnknownToken(t *testing.T) {
	r := NewMemoryRegistry()
	assert.False(t, r.IsActive(context.Background(), "nope"))
}
