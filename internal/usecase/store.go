package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/storerating/internal/domain/errors"
	"github.com/polkiloo/storerating/internal/domain/model"
	"github.com/polkiloo/storerating/internal/domain/repository"
)

// StoreUseCase manages stores and role-specific store listings.
type StoreUseCase struct {
	stores  repository.StoreRepository
	ratings repository.RatingRepository
}

// NewStoreUseCase constructs StoreUseCase.
func NewStoreUseCase(stores repository.StoreRepository, ratings repository.RatingRepository) *StoreUseCase {
	return &StoreUseCase{stores: stores, ratings: ratings}
}

// Create registers a store, linking it to the store owner named by OwnerEmail when set.
func (u *StoreUseCase) Create(ctx context.Context, in model.StoreInput) (*model.Store, error) {
	name, err := ValidateStoreName(in.Name)
	if err != nil {
		return nil, err
	}
	email, err := NormalizeEmail("email", in.Email)
	if err != nil {
		return nil, err
	}
	address, err := ValidateAddress(in.Address)
	if err != nil {
		return nil, err
	}
	ownerEmail := strings.TrimSpace(in.OwnerEmail)
	if ownerEmail != "" {
		if ownerEmail, err = NormalizeEmail("ownerEmail", ownerEmail); err != nil {
			return nil, err
		}
	}

	store, err := u.stores.Create(ctx, model.Store{Name: name, Email: email, Address: address}, ownerEmail)
	switch {
	case err == nil:
		return store, nil
	case errors.Is(err, domainErrors.ErrOwnerNotFound):
		return nil, domainErrors.NewValidationError("ownerEmail", "Store owner with this email not found")
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return nil, domainErrors.ErrStoreExists
	default:
		return nil, err
	}
}

// All lists every store with rating totals and owner names.
func (u *StoreUseCase) All(ctx context.Context) ([]model.StoreSummary, error) {
	return u.stores.ListSummaries(ctx)
}

// ForRater lists every store along with the caller's own rating.
func (u *StoreUseCase) ForRater(ctx context.Context, userID int64) ([]model.StoreSummary, error) {
	return u.stores.ListForRater(ctx, userID)
}

// Owned lists the stores owned by the user.
func (u *StoreUseCase) Owned(ctx context.Context, ownerID int64) ([]model.StoreSummary, error) {
	return u.stores.ListByOwner(ctx, ownerID)
}

// Ratings returns the ratings of a store the viewer is allowed to inspect.
// Owners get ErrForbidden for stores they do not own, including missing ones,
// so store ids cannot be probed.
func (u *StoreUseCase) Ratings(ctx context.Context, viewer *model.User, storeID int64) ([]model.RatingView, error) {
	if viewer == nil || !viewer.Role.Can(model.CapManageOwnStores) {
		return nil, domainErrors.ErrForbidden
	}

	store, err := u.stores.GetByID(ctx, storeID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
		if viewer.Role.Can(model.CapViewAnyStore) {
			return nil, domainErrors.ErrStoreNotFound
		}
		return nil, domainErrors.ErrForbidden
	}

	if !viewer.Role.Can(model.CapViewAnyStore) && (store.OwnerID == nil || *store.OwnerID != viewer.ID) {
		return nil, domainErrors.ErrForbidden
	}

	return u.ratings.ListByStore(ctx, store.ID)
}
