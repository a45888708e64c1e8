package test

import (
	"context"
	"sort"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/storerating/internal/domain/errors"
	"github.com/polkiloo/storerating/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users    map[string]*model.User
	ByID     map[int64]*model.User
	Next     int64
	Err      error
	Filters  []model.UserFilter
	Inserted []model.User
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user.ID = s.Next
	user.CreatedAt = time.Unix(s.Next, 0).UTC()
	s.Next++
	stored := user
	s.Users[user.Email] = &stored
	s.ByID[user.ID] = &stored
	s.Inserted = append(s.Inserted, stored)
	return &user, nil
}

// EnsureExists inserts the user when the email is free and reports whether it did.
func (s *UserRepositoryStub) EnsureExists(ctx context.Context, user model.User) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	if _, exists := s.Users[user.Email]; exists {
		return false, nil
	}
	if _, err := s.Create(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List filters stored users the way the SQL query does, newest first.
func (s *UserRepositoryStub) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	s.Filters = append(s.Filters, filter)
	if s.Err != nil {
		return nil, s.Err
	}
	needle := strings.ToLower(filter.Search)
	result := []model.User{}
	for _, u := range s.ByID {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) &&
			!strings.Contains(strings.ToLower(u.Address), needle) {
			continue
		}
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// StoreCreateCall records arguments passed to StoreRepositoryStub.Create.
type StoreCreateCall struct {
	Store      model.Store
	OwnerEmail string
}

// StoreRepositoryStub allows tests to customize behaviour.
type StoreRepositoryStub struct {
	CreateFn        func(context.Context, model.Store, string) (*model.Store, error)
	GetByIDFn       func(context.Context, int64) (*model.Store, error)
	ListSummariesFn func(context.Context) ([]model.StoreSummary, error)
	ListForRaterFn  func(context.Context, int64) ([]model.StoreSummary, error)
	ListByOwnerFn   func(context.Context, int64) ([]model.StoreSummary, error)

	Stores  map[int64]model.Store
	Created []StoreCreateCall
}

// Create tracks invocations and returns configured responses.
func (s *StoreRepositoryStub) Create(ctx context.Context, store model.Store, ownerEmail string) (*model.Store, error) {
	s.Created = append(s.Created, StoreCreateCall{Store: store, OwnerEmail: ownerEmail})
	if s.CreateFn != nil {
		return s.CreateFn(ctx, store, ownerEmail)
	}
	store.ID = int64(len(s.Created))
	return &store, nil
}

// GetByID returns the override result or a store from the Stores map.
func (s *StoreRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if store, ok := s.Stores[id]; ok {
		return &store, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListSummaries returns configured summaries.
func (s *StoreRepositoryStub) ListSummaries(ctx context.Context) ([]model.StoreSummary, error) {
	if s.ListSummariesFn != nil {
		return s.ListSummariesFn(ctx)
	}
	return []model.StoreSummary{}, nil
}

// ListForRater returns configured summaries for the rater.
func (s *StoreRepositoryStub) ListForRater(ctx context.Context, userID int64) ([]model.StoreSummary, error) {
	if s.ListForRaterFn != nil {
		return s.ListForRaterFn(ctx, userID)
	}
	return []model.StoreSummary{}, nil
}

// ListByOwner returns configured summaries for the owner.
func (s *StoreRepositoryStub) ListByOwner(ctx context.Context, ownerID int64) ([]model.StoreSummary, error) {
	if s.ListByOwnerFn != nil {
		return s.ListByOwnerFn(ctx, ownerID)
	}
	return []model.StoreSummary{}, nil
}

type ratingKey struct {
	userID  int64
	storeID int64
}

// RatingRepositoryStub keeps one rating per (user, store) pair in memory.
type RatingRepositoryStub struct {
	UpsertErr     error
	ListErr       error
	KnownStores   map[int64]bool
	ListByStoreFn func(context.Context, int64) ([]model.RatingView, error)

	rows map[ratingKey]model.Rating
	next int64
}

// NewRatingRepositoryStub constructs stub accepting ratings for the listed stores.
func NewRatingRepositoryStub(storeIDs ...int64) *RatingRepositoryStub {
	known := make(map[int64]bool, len(storeIDs))
	for _, id := range storeIDs {
		known[id] = true
	}
	return &RatingRepositoryStub{KnownStores: known, rows: make(map[ratingKey]model.Rating)}
}

// Upsert inserts or replaces the rating and reports whether it was created.
func (s *RatingRepositoryStub) Upsert(ctx context.Context, rating model.Rating) (*model.Rating, bool, error) {
	if s.UpsertErr != nil {
		return nil, false, s.UpsertErr
	}
	if !s.KnownStores[rating.StoreID] {
		return nil, false, domainErrors.ErrNotFound
	}
	if s.rows == nil {
		s.rows = make(map[ratingKey]model.Rating)
	}
	key := ratingKey{userID: rating.UserID, storeID: rating.StoreID}
	existing, found := s.rows[key]
	if found {
		rating.ID = existing.ID
	} else {
		s.next++
		rating.ID = s.next
	}
	s.rows[key] = rating
	return &rating, !found, nil
}

// Count returns the number of stored ratings.
func (s *RatingRepositoryStub) Count() int {
	return len(s.rows)
}

// ListByUser returns the user's stored ratings ordered by id descending.
func (s *RatingRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.RatingView, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	result := []model.RatingView{}
	for key, r := range s.rows {
		if key.userID == userID {
			result = append(result, model.RatingView{Rating: r})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// ListByStore delegates to override or returns the store's stored ratings.
func (s *RatingRepositoryStub) ListByStore(ctx context.Context, storeID int64) ([]model.RatingView, error) {
	if s.ListByStoreFn != nil {
		return s.ListByStoreFn(ctx, storeID)
	}
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	result := []model.RatingView{}
	for key, r := range s.rows {
		if key.storeID == storeID {
			result = append(result, model.RatingView{Rating: r})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// DailyCountsCall records arguments of ActivityRepositoryStub.DailyCounts.
type DailyCountsCall struct {
	Kind  model.EntityKind
	Since time.Time
	TZ    string
}

// ActivityRepositoryStub serves canned analytics inputs per entity kind.
type ActivityRepositoryStub struct {
	TotalsVal model.PlatformTotals
	Daily     map[model.EntityKind][]model.DayCount
	Periods   map[model.EntityKind]model.PeriodCounts
	Items     map[model.EntityKind][]model.ActivityItem
	Err       error

	DailyCalls []DailyCountsCall
	Bounds     [][2]time.Time
	Limits     []int
}

// Totals returns configured totals.
func (s *ActivityRepositoryStub) Totals(ctx context.Context) (model.PlatformTotals, error) {
	if s.Err != nil {
		return model.PlatformTotals{}, s.Err
	}
	return s.TotalsVal, nil
}

// DailyCounts records the call and returns configured counts.
func (s *ActivityRepositoryStub) DailyCounts(ctx context.Context, kind model.EntityKind, since time.Time, tz string) ([]model.DayCount, error) {
	s.DailyCalls = append(s.DailyCalls, DailyCountsCall{Kind: kind, Since: since, TZ: tz})
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Daily[kind], nil
}

// PeriodCounts records the month bounds and returns configured counts.
func (s *ActivityRepositoryStub) PeriodCounts(ctx context.Context, kind model.EntityKind, previousStart, currentStart time.Time) (model.PeriodCounts, error) {
	s.Bounds = append(s.Bounds, [2]time.Time{previousStart, currentStart})
	if s.Err != nil {
		return model.PeriodCounts{}, s.Err
	}
	return s.Periods[kind], nil
}

// Recent returns configured feed items for the kind.
func (s *ActivityRepositoryStub) Recent(ctx context.Context, kind model.EntityKind, limit int) ([]model.ActivityItem, error) {
	s.Limits = append(s.Limits, limit)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items[kind], nil
}
