package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/storerating/internal/domain/errors"
	"github.com/polkiloo/storerating/internal/domain/model"
	"github.com/polkiloo/storerating/internal/domain/repository"
)

// RatingRecorder observes accepted rating submissions.
type RatingRecorder interface {
	RatingSubmitted(value int, created bool)
}

// RatingUseCase submits and lists ratings.
type RatingUseCase struct {
	ratings  repository.RatingRepository
	recorder RatingRecorder
}

// NewRatingUseCase constructs RatingUseCase.
func NewRatingUseCase(ratings repository.RatingRepository, recorder RatingRecorder) *RatingUseCase {
	return &RatingUseCase{ratings: ratings, recorder: recorder}
}

// Submit creates the user's rating for the store or replaces the existing one.
// The returned flag is true when a new rating was created.
func (u *RatingUseCase) Submit(ctx context.Context, userID, storeID int64, value int, comment *string) (*model.Rating, bool, error) {
	if storeID <= 0 {
		return nil, false, domainErrors.NewValidationError("storeId", "Valid store ID and rating (1-5) are required")
	}
	if err := ValidateRating(value); err != nil {
		return nil, false, err
	}
	comment, err := NormalizeComment(comment)
	if err != nil {
		return nil, false, err
	}

	rating, created, err := u.ratings.Upsert(ctx, model.Rating{
		UserID:  userID,
		StoreID: storeID,
		Value:   value,
		Comment: comment,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, false, domainErrors.ErrStoreNotFound
		}
		return nil, false, err
	}

	if u.recorder != nil {
		u.recorder.RatingSubmitted(rating.Value, created)
	}
	return rating, created, nil
}

// ListByUser returns the user's ratings newest first with store names.
func (u *RatingUseCase) ListByUser(ctx context.Context, userID int64) ([]model.RatingView, error) {
	return u.ratings.ListByUser(ctx, userID)
}
