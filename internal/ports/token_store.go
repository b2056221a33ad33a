package ports

import "context"

// TokenStore persists the bearer token, the only durable state the client
// keeps across runs. Load returns domain.ErrNoSession when nothing is
// stored.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
