package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/storerating/internal/domain/errors"
	"github.com/polkiloo/storerating/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, model.UserInput) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	CurrentUserFn  func(context.Context, string) (*model.User, error)
	// Tokens maps bearer tokens to users for CurrentUser when no override is set.
	Tokens map[string]*model.User
}

// Register returns a customer and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, in model.UserInput) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	return &model.User{ID: 1, Name: in.Name, Email: in.Email, Address: in.Address, Role: model.RoleCustomer}, "token", nil
}

// Authenticate returns a customer and token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "token", nil
}

// CurrentUser resolves the token through override or Tokens map.
func (s AuthFacadeStub) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, token)
	}
	if user, ok := s.Tokens[token]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrUnauthorized
}

// AdminFacadeStub provides controllable behaviour for admin endpoints.
type AdminFacadeStub struct {
	UsersFn       func(context.Context, string, string) ([]model.User, error)
	CreateUserFn  func(context.Context, model.UserInput) (*model.User, error)
	StoresFn      func(context.Context) ([]model.StoreSummary, error)
	CreateStoreFn func(context.Context, model.StoreInput) (*model.Store, error)
	DashboardFn   func(context.Context) (*model.Dashboard, error)
	ActivityFn    func(context.Context) (*model.ActivityReport, error)
}

// Users returns predefined accounts.
func (s AdminFacadeStub) Users(ctx context.Context, role, search string) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, role, search)
	}
	return []model.User{{ID: 1, Name: "Alice", Email: "alice@example.com", Role: model.RoleCustomer}}, nil
}

// CreateUser echoes the input as a stored account.
func (s AdminFacadeStub) CreateUser(ctx context.Context, in model.UserInput) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, in)
	}
	return &model.User{ID: 2, Name: in.Name, Email: in.Email, Role: model.Role(in.Role)}, nil
}

// Stores returns predefined store summaries.
func (s AdminFacadeStub) Stores(ctx context.Context) ([]model.StoreSummary, error) {
	if s.StoresFn != nil {
		return s.StoresFn(ctx)
	}
	return []model.StoreSummary{{Store: model.Store{ID: 1, Name: "Shop"}, RatingSum: 9, RatingCount: 2}}, nil
}

// CreateStore echoes the input as a stored store.
func (s AdminFacadeStub) CreateStore(ctx context.Context, in model.StoreInput) (*model.Store, error) {
	if s.CreateStoreFn != nil {
		return s.CreateStoreFn(ctx, in)
	}
	return &model.Store{ID: 3, Name: in.Name, Email: in.Email, Address: in.Address}, nil
}

// Dashboard returns a small overview.
func (s AdminFacadeStub) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	return &model.Dashboard{Totals: model.PlatformTotals{Users: 1, Stores: 1, Ratings: 2}}, nil
}

// Activity returns an empty report stamped with the Unix epoch.
func (s AdminFacadeStub) Activity(ctx context.Context) (*model.ActivityReport, error) {
	if s.ActivityFn != nil {
		return s.ActivityFn(ctx)
	}
	return &model.ActivityReport{Daily: []model.DailyActivity{}, Recent: []model.ActivityItem{}, Now: time.Unix(0, 0).UTC()}, nil
}

// RaterFacadeStub simulates store browsing and rating submission.
type RaterFacadeStub struct {
	StoresForRaterFn func(context.Context, int64) ([]model.StoreSummary, error)
	SubmitRatingFn   func(context.Context, int64, int64, int, *string) (*model.Rating, bool, error)
	MyRatingsFn      func(context.Context, int64) ([]model.RatingView, error)
}

// StoresForRater returns predefined summaries.
func (s RaterFacadeStub) StoresForRater(ctx context.Context, userID int64) ([]model.StoreSummary, error) {
	if s.StoresForRaterFn != nil {
		return s.StoresForRaterFn(ctx, userID)
	}
	return []model.StoreSummary{}, nil
}

// SubmitRating echoes the submission as a created rating.
func (s RaterFacadeStub) SubmitRating(ctx context.Context, userID, storeID int64, value int, comment *string) (*model.Rating, bool, error) {
	if s.SubmitRatingFn != nil {
		return s.SubmitRatingFn(ctx, userID, storeID, value, comment)
	}
	return &model.Rating{ID: 1, UserID: userID, StoreID: storeID, Value: value, Comment: comment}, true, nil
}

// MyRatings returns predefined ratings.
func (s RaterFacadeStub) MyRatings(ctx context.Context, userID int64) ([]model.RatingView, error) {
	if s.MyRatingsFn != nil {
		return s.MyRatingsFn(ctx, userID)
	}
	return []model.RatingView{}, nil
}

// OwnerFacadeStub simulates store owner endpoints.
type OwnerFacadeStub struct {
	OwnedStoresFn  func(context.Context, int64) ([]model.StoreSummary, error)
	StoreRatingsFn func(context.Context, *model.User, int64) ([]model.RatingView, error)
}

// OwnedStores returns predefined summaries.
func (s OwnerFacadeStub) OwnedStores(ctx context.Context, ownerID int64) ([]model.StoreSummary, error) {
	if s.OwnedStoresFn != nil {
		return s.OwnedStoresFn(ctx, ownerID)
	}
	return []model.StoreSummary{}, nil
}

// StoreRatings returns predefined ratings.
func (s OwnerFacadeStub) StoreRatings(ctx context.Context, viewer *model.User, storeID int64) ([]model.RatingView, error) {
	if s.StoreRatingsFn != nil {
		return s.StoreRatingsFn(ctx, viewer, storeID)
	}
	return []model.RatingView{}, nil
}

// HealthFacadeStub reports database health.
type HealthFacadeStub struct {
	Err error
}

// Health returns the configured error.
func (s HealthFacadeStub) Health(context.Context) error {
	return s.Err
}

// StoreRatingFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreRatingFacadeStub struct {
	AuthFacadeStub
	AdminFacadeStub
	RaterFacadeStub
	OwnerFacadeStub
	HealthFacadeStub
}
