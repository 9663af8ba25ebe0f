package contracts

import "context"

type ResourceService[T any] interface {
	List(ctx context.Context, params map[string]any) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, id string, entity *T) (*T, error)
	Patch(ctx context.Context, id string, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id string) error
}
