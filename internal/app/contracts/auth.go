package contracts

import (
	"context"

	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/dto/responses"
)

type AuthService interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Me(ctx context.Context) (map[string]any, error)
}
