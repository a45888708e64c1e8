package repository

import (
	"context"

	"github.com/polkiloo/storerating/internal/domain/model"
)

// StoreRepository describes persistence operations for stores and their rating totals.
type StoreRepository interface {
	// Create inserts the store; a non-empty ownerEmail must resolve to a store owner.
	Create(ctx context.Context, store model.Store, ownerEmail string) (*model.Store, error)
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	ListSummaries(ctx context.Context) ([]model.StoreSummary, error)
	ListForRater(ctx context.Context, userID int64) ([]model.StoreSummary, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.StoreSummary, error)
}
