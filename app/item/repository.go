package item

import (
	"context"
	"errors"

	"freezer/domain"
)

// ErrNotFound is returned by repositories when an item id does not resolve.
var ErrNotFound = errors.New("item not found")

type Repository interface {
	Close() error
	GetItemsByOwner(ctx context.Context, ownerID string) ([]domain.Item, error)
	GetItem(ctx context.Context, id string) (domain.Item, error)
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
