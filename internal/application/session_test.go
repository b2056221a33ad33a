package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/bnema/pharmacy-intel-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreBootstrapWithoutTokenEndsAnonymous(t *testing.T) {
	t.Parallel()

	store := NewSessionStore(&memTokenStore{}, &scriptedAuth{})
	require.NoError(t, store.Bootstrap(context.Background()))

	session := store.Current()
	assert.Equal(t, domain.SessionAnonymous, session.State)
	assert.Nil(t, session.Identity)
	assert.Error(t, NewRouteGuard(store).Admit())
}

func TestSessionStoreBootstrapWithValidTokenAuthenticates(t *testing.T) {
	t.Parallel()

	tokens := &memTokenStore{token: "T"}
	auth := &scriptedAuth{
		verifyIdentity: domain.Identity{ID: 1, Email: "admin@pharma.local", Name: "Admin"},
	}
	store := NewSessionStore(tokens, auth)
	require.NoError(t, store.Bootstrap(context.Background()))

	session := store.Current()
	assert.Equal(t, domain.SessionAuthenticated, session.State)
	require.NotNil(t, session.Identity)
	assert.Equal(t, "admin@pharma.local", session.Identity.Email)
	assert.Equal(t, "T", store.Token())
	assert.NoError(t, NewRouteGuard(store).Admit())
	assert.Equal(t, "T", auth.verifiedToken)
}

func TestSessionStoreBootstrapClearsRejectedToken(t *testing.T) {
	t.Parallel()

	tokens := &memTokenStore{token: "expired"}
	auth := &scriptedAuth{verifyErr: &domain.AuthError{Detail: "token expired"}}
	store := NewSessionStore(tokens, auth)
	require.NoError(t, store.Bootstrap(context.Background()))

	assert.Equal(t, domain.SessionAnonymous, store.Current().State)
	assert.Empty(t, tokens.token, "rejected token must be cleared from disk")
}

func TestSessionStoreBootstrapRunsOnce(t *testing.T) {
	t.Parallel()

	tokens := &memTokenStore{token: "T"}
	auth := &scriptedAuth{verifyIdentity: domain.Identity{Email: "a@b.c"}}
	store := NewSessionStore(tokens, auth)

	require.NoError(t, store.Bootstrap(context.Background()))
	require.NoError(t, store.Bootstrap(context.Background()))
	assert.Equal(t, 1, auth.verifyCalls)
}

func TestSessionStoreLoginPersistsTokenAndAuthenticates(t *testing.T) {
	t.Parallel()

	tokens := &memTokenStore{}
	auth := &scriptedAuth{
		loginResult: ports.LoginResult{
			AccessToken: "T",
			Identity:    domain.Identity{ID: 7, Email: "admin@pharma.local"},
		},
	}
	store := NewSessionStore(tokens, auth)

	session, err := store.Login(context.Background(), LoginCommand{
		Email:    "admin@pharma.local",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SessionAuthenticated, session.State)
	assert.Equal(t, "T", tokens.token)
	assert.NoError(t, NewRouteGuard(store).Admit())
}

func TestSessionStoreLoginFailureStaysAnonymous(t *testing.T) {
	t.Parallel()

	tokens := &memTokenStore{}
	auth := &scriptedAuth{loginErr: &domain.AuthError{Detail: "Invalid credentials"}}
	store := NewSessionStore(tokens, auth)
	require.NoError(t, store.Bootstrap(context.Background()))

	_, err := store.Login(context.Background(), LoginCommand{
		Email:    "admin@pharma.local",
		Password: "wrong",
	})

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid credentials", authErr.Detail)
	assert.Equal(t, domain.SessionAnonymous, store.Current().State)
	assert.Empty(t, tokens.token)
}

func TestSessionStoreLoginValidationNeverReachesCollaborator(t *testing.T) {
	t.Parallel()

	auth := &scriptedAuth{}
	store := NewSessionStore(&memTokenStore{}, auth)

	_, err := store.Login(context.Background(), LoginCommand{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email address")

	_, err = store.Login(context.Background(), LoginCommand{Email: "a@b.c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")

	assert.Equal(t, 0, auth.loginCalls)
}

func TestSessionStoreLogoutClearsEverything(t *testing.T) {
	t.Parallel()

	tokens := &memTokenStore{}
	auth := &scriptedAuth{
		loginResult: ports.LoginResult{AccessToken: "T", Identity: domain.Identity{Email: "a@b.c"}},
	}
	store := NewSessionStore(tokens, auth)

	_, err := store.Login(context.Background(), LoginCommand{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	store.Logout(context.Background())

	session := store.Current()
	assert.Equal(t, domain.SessionAnonymous, session.State)
	assert.Nil(t, session.Identity)
	assert.Empty(t, store.Token())
	assert.Empty(t, tokens.token)
	assert.ErrorIs(t, NewRouteGuard(store).Admit(), domain.ErrLoginRequired)
}

type memTokenStore struct {
	token string
}

func (s *memTokenStore) Load(_ context.Context) (string, error) {
	if s.token == "" {
		return "", domain.ErrNoSession
	}
	return s.token, nil
}

func (s *memTokenStore) Save(_ context.Context, token string) error {
	s.token = token
	return nil
}

func (s *memTokenStore) Clear(_ context.Context) error {
	s.token = ""
	return nil
}

type scriptedAuth struct {
	loginResult ports.LoginResult
	loginErr    error
	loginCalls  int

	verifyIdentity domain.Identity
	verifyErr      error
	verifyCalls    int
	verifiedToken  string
}

func (a *scriptedAuth) Login(_ context.Context, _, _ string) (ports.LoginResult, error) {
	a.loginCalls++
	if a.loginErr != nil {
		return ports.LoginResult{}, a.loginErr
	}
	if a.loginResult.AccessToken == "" {
		return ports.LoginResult{}, errors.New("no login scripted")
	}
	return a.loginResult, nil
}

func (a *scriptedAuth) VerifyToken(_ context.Context, token string) (domain.Identity, error) {
	a.verifyCalls++
	a.verifiedToken = token
	if a.verifyErr != nil {
		return domain.Identity{}, a.verifyErr
	}
	return a.verifyIdentity, nil
}
