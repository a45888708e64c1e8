package repository

import (
	"context"

	"github.com/polkiloo/storerating/internal/domain/model"
)

// RatingRepository describes persistence operations for ratings.
type RatingRepository interface {
	// Upsert writes the rating atomically and reports whether a new row was created.
	Upsert(ctx context.Context, rating model.Rating) (*model.Rating, bool, error)
	ListByUser(ctx context.Context, userID int64) ([]model.RatingView, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.RatingView, error)
}
