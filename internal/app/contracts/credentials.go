package contracts

import "context"

// CredentialProvider is queried before every request attempt. An empty token means
// the request goes out unauthenticated.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

type TokenStore interface {
	CredentialProvider
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}
