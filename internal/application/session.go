package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/bnema/pharmacy-intel-cli/internal/ports"
)

// SessionStore owns the identity/token state machine:
// Loading -> {Anonymous, Authenticated}, Anonymous <-> Authenticated.
// The persisted bearer token is the only durable state; everything else is
// rebuilt by Bootstrap on each run. Methods are safe for concurrent use
// since fetch commands resolve on background goroutines.
type SessionStore struct {
	tokens ports.TokenStore
	auth   ports.AuthClient

	mu           sync.RWMutex
	state        domain.SessionState
	identity     *domain.Identity
	token        string
	bootstrapped bool
}

func NewSessionStore(tokens ports.TokenStore, auth ports.AuthClient) *SessionStore {
	return &SessionStore{
		tokens: tokens,
		auth:   auth,
		state:  domain.SessionLoading,
	}
}

// Bootstrap resolves the persisted token into a session exactly once per
// process. A missing token means Anonymous; a token the server no longer
// accepts (or any verification failure) is cleared and also ends Anonymous.
func (s *SessionStore) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bootstrapped {
		return nil
	}
	s.bootstrapped = true

	token, err := s.tokens.Load(ctx)
	if err != nil || token == "" {
		s.becomeAnonymousLocked()
		return nil
	}

	identity, err := s.auth.VerifyToken(ctx, token)
	if err != nil {
		_ = s.tokens.Clear(ctx)
		s.becomeAnonymousLocked()
		return nil
	}

	s.state = domain.SessionAuthenticated
	s.identity = &identity
	s.token = token
	return nil
}

func (s *SessionStore) Login(ctx context.Context, cmd LoginCommand) (domain.Session, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Session{}, err
	}

	result, err := s.auth.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return domain.Session{}, err
	}

	if err := s.tokens.Save(ctx, result.AccessToken); err != nil {
		return domain.Session{}, fmt.Errorf("persist session token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.SessionAuthenticated
	identity := result.Identity
	s.identity = &identity
	s.token = result.AccessToken

	return s.sessionLocked(), nil
}

// Logout clears the persisted token and identity unconditionally. The file
// clear is best effort; the in-memory transition never fails.
func (s *SessionStore) Logout(ctx context.Context) {
	_ = s.tokens.Clear(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.becomeAnonymousLocked()
}

func (s *SessionStore) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionLocked()
}

// Token returns the current bearer token, empty when anonymous.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionStore) sessionLocked() domain.Session {
	session := domain.Session{State: s.state, Token: s.token}
	if s.identity != nil {
		identity := *s.identity
		session.Identity = &identity
	}
	return session
}

func (s *SessionStore) becomeAnonymousLocked() {
	s.state = domain.SessionAnonymous
	s.identity = nil
	s.token = ""
}
