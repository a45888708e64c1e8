package app

import (
	"context"

	"github.com/polkiloo/storerating/internal/domain/model"
	"github.com/polkiloo/storerating/internal/usecase"
)

// HealthChecker pings backing storage.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StoreRatingFacade adapts use cases to the operations exposed over HTTP.
type StoreRatingFacade struct {
	auth      *usecase.AuthUseCase
	users     *usecase.UserUseCase
	stores    *usecase.StoreUseCase
	ratings   *usecase.RatingUseCase
	dashboard *usecase.DashboardUseCase
	health    HealthChecker
}

func NewStoreRatingFacade(
	auth *usecase.AuthUseCase,
	users *usecase.UserUseCase,
	stores *usecase.StoreUseCase,
	ratings *usecase.RatingUseCase,
	dashboard *usecase.DashboardUseCase,
	health HealthChecker,
) *StoreRatingFacade {
	return &StoreRatingFacade{
		auth:      auth,
		users:     users,
		stores:    stores,
		ratings:   ratings,
		dashboard: dashboard,
		health:    health,
	}
}

func (f *StoreRatingFacade) Register(ctx context.Context, in model.UserInput) (*model.User, string, error) {
	return f.auth.Register(ctx, in)
}

func (f *StoreRatingFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreRatingFacade) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	return f.auth.CurrentUser(ctx, token)
}

func (f *StoreRatingFacade) Users(ctx context.Context, role, search string) ([]model.User, error) {
	return f.users.List(ctx, role, search)
}

func (f *StoreRatingFacade) CreateUser(ctx context.Context, in model.UserInput) (*model.User, error) {
	return f.users.Create(ctx, in)
}

func (f *StoreRatingFacade) Stores(ctx context.Context) ([]model.StoreSummary, error) {
	return f.stores.All(ctx)
}

func (f *StoreRatingFacade) CreateStore(ctx context.Context, in model.StoreInput) (*model.Store, error) {
	return f.stores.Create(ctx, in)
}

func (f *StoreRatingFacade) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	return f.dashboard.Overview(ctx)
}

func (f *StoreRatingFacade) Activity(ctx context.Context) (*model.ActivityReport, error) {
	return f.dashboard.Activity(ctx)
}

func (f *StoreRatingFacade) StoresForRater(ctx context.Context, userID int64) ([]model.StoreSummary, error) {
	return f.stores.ForRater(ctx, userID)
}

func (f *StoreRatingFacade) SubmitRating(ctx context.Context, userID, storeID int64, value int, comment *string) (*model.Rating, bool, error) {
	return f.ratings.Submit(ctx, userID, storeID, value, comment)
}

func (f *StoreRatingFacade) MyRatings(ctx context.Context, userID int64) ([]model.RatingView, error) {
	return f.ratings.ListByUser(ctx, userID)
}

func (f *StoreRatingFacade) OwnedStores(ctx context.Context, ownerID int64) ([]model.StoreSummary, error) {
	return f.stores.Owned(ctx, ownerID)
}

func (f *StoreRatingFacade) StoreRatings(ctx context.Context, viewer *model.User, storeID int64) ([]model.RatingView, error) {
	return f.stores.Ratings(ctx, viewer, storeID)
}

func (f *StoreRatingFacade) Health(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}

// SeedAdmin makes sure the configured administrator account exists.
func (f *StoreRatingFacade) SeedAdmin(ctx context.Context, name, email, password string) (bool, error) {
	return f.users.SeedAdmin(ctx, name, email, password)
}
