package credentials

import "context"

// StaticProvider always returns the same token. An empty token disables the header.
type StaticProvider struct {
	token string
}

func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: token}
}

func (p *StaticProvider) Token(ctx context.Context) (string, error) {
	return p.token, nil
}
