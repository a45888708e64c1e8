package handlers

import (
	"context"

	"github.com/polkiloo/storerating/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in model.UserInput) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}

// AdminFacade exposes platform administration.
type AdminFacade interface {
	Users(ctx context.Context, role, search string) ([]model.User, error)
	CreateUser(ctx context.Context, in model.UserInput) (*model.User, error)
	Stores(ctx context.Context) ([]model.StoreSummary, error)
	CreateStore(ctx context.Context, in model.StoreInput) (*model.Store, error)
	Dashboard(ctx context.Context) (*model.Dashboard, error)
	Activity(ctx context.Context) (*model.ActivityReport, error)
}

// RaterFacade covers browsing and rating stores.
type RaterFacade interface {
	StoresForRater(ctx context.Context, userID int64) ([]model.StoreSummary, error)
	SubmitRating(ctx context.Context, userID, storeID int64, value int, comment *string) (*model.Rating, bool, error)
	MyRatings(ctx context.Context, userID int64) ([]model.RatingView, error)
}

// OwnerFacade covers the store owner dashboard.
type OwnerFacade interface {
	OwnedStores(ctx context.Context, ownerID int64) ([]model.StoreSummary, error)
	StoreRatings(ctx context.Context, viewer *model.User, storeID int64) ([]model.RatingView, error)
}

// HealthFacade reports whether backing services are reachable.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// StoreRatingFacade aggregates the full set of operations used across handlers.
type StoreRatingFacade interface {
	AuthFacade
	AdminFacade
	RaterFacade
	OwnerFacade
	HealthFacade
}
