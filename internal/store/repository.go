package store

import (
	"context"
	"errors"

	"github.com/samaansync/inventory-service/internal/model"
)

var ErrAlreadyExists = errors.New("store already exists")

type Repository interface {
	FindAll(ctx context.Context) ([]model.Store, error)
	FindByID(ctx context.Context, storeID string) (*model.Store, error)
	Create(ctx context.Context, s *model.Store) error
	Update(ctx context.Context, s *model.Store) (*model.Store, error)
}
