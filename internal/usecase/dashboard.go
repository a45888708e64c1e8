package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/storerating/internal/analytics"
	"github.com/polkiloo/storerating/internal/domain/model"
	"github.com/polkiloo/storerating/internal/domain/repository"
)

var activityKinds = []model.EntityKind{model.EntityUser, model.EntityStore, model.EntityRating}

// DashboardUseCase composes the admin overview and activity analytics.
type DashboardUseCase struct {
	activity repository.ActivityRepository
	stores   repository.StoreRepository
	loc      *time.Location
	now      func() time.Time
}

// NewDashboardUseCase constructs DashboardUseCase computing calendar days in loc.
func NewDashboardUseCase(activity repository.ActivityRepository, stores repository.StoreRepository, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{activity: activity, stores: stores, loc: loc, now: time.Now}
}

// Overview returns platform totals and the best rated stores.
func (u *DashboardUseCase) Overview(ctx context.Context) (*model.Dashboard, error) {
	totals, err := u.activity.Totals(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := u.stores.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	return &model.Dashboard{
		Totals:    totals,
		TopStores: analytics.TopStores(stores, analytics.TopStoresLimit),
	}, nil
}

// Activity returns the trailing daily series, month-over-month growth and the
// recent activity feed.
func (u *DashboardUseCase) Activity(ctx context.Context) (*model.ActivityReport, error) {
	now := u.now().In(u.loc)
	since := analytics.WindowStart(now, u.loc)
	previousStart, currentStart := analytics.MonthBounds(now, u.loc)

	daily := make(map[model.EntityKind][]model.DayCount, len(activityKinds))
	growth := make(map[model.EntityKind]model.GrowthStat, len(activityKinds))
	feeds := make([][]model.ActivityItem, 0, len(activityKinds))
	for _, kind := range activityKinds {
		counts, err := u.activity.DailyCounts(ctx, kind, since, u.loc.String())
		if err != nil {
			return nil, err
		}
		daily[kind] = counts

		period, err := u.activity.PeriodCounts(ctx, kind, previousStart, currentStart)
		if err != nil {
			return nil, err
		}
		growth[kind] = analytics.NewGrowthStat(period)

		recent, err := u.activity.Recent(ctx, kind, analytics.RecentPerKind)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, recent)
	}

	return &model.ActivityReport{
		Daily: analytics.DailySeries(now, u.loc, daily[model.EntityUser], daily[model.EntityStore], daily[model.EntityRating]),
		Growth: model.MonthlyGrowth{
			Users:   growth[model.EntityUser],
			Stores:  growth[model.EntityStore],
			Ratings: growth[model.EntityRating],
		},
		Recent: analytics.MergeRecent(analytics.RecentLimit, feeds...),
		Now:    now,
	}, nil
}
