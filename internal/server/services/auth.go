// Package services contains the authentication state machine composed from
// the account store and the session registry.
package services

import (
	"context"
	"errors"

	"github.com/dkravtsov/authwatch/internal/common"
	"github.com/dkravtsov/authwatch/internal/server/accounts"
	"github.com/dkravtsov/authwatch/internal/server/sessions"
)

// AuthService drives the session state machine:
//
//	{nonexistent} --SignIn--> {active} --SignOut--> {inactive}
//
// No transition leads back to active. Multiple concurrent sessions per
// account are permitted: a second SignIn creates an additional independent
// session and never touches earlier ones.
type AuthService struct {
	accounts accounts.Store
	sessions sessions.Registry
}

func NewAuthService(as accounts.Store, sr sessions.Registry) *AuthService {
	return &AuthService{accounts: as, sessions: sr}
}

// SignUp registers a new account and never creates a session.
// common.ErrDuplicateIdentity passes through to the caller.
func (s *AuthService) SignUp(ctx context.Context, identity, credential string) (*accounts.Account, error) {
	return s.accounts.Register(ctx, identity, credential)
}

// SignIn verifies the credential and issues a fresh session token.
// Unknown identity and wrong credential both map to
// common.ErrInvalidCredentials, so the caller cannot enumerate accounts.
func (s *AuthService) SignIn(ctx context.Context, identity, credential string) (*sessions.Session, error) {

	acc, err := s.accounts.Verify(ctx, identity, credential)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrBadCredential) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	session, err := s.sessions.Create(ctx, acc.ID)
	if err != nil {
		return nil, common.ErrInternal
	}

	return session, nil
}

// SignOut terminates the session. common.ErrNoSuchSession passes through,
// including for a token that was already signed out.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	return s.sessions.Invalidate(ctx, token)
}
