package repository

import (
	"context"
	"time"

	"github.com/polkiloo/storerating/internal/domain/model"
)

// ActivityRepository exposes the raw counts behind platform analytics.
type ActivityRepository interface {
	Totals(ctx context.Context) (model.PlatformTotals, error)
	DailyCounts(ctx context.Context, kind model.EntityKind, since time.Time, tz string) ([]model.DayCount, error)
	PeriodCounts(ctx context.Context, kind model.EntityKind, previousStart, currentStart time.Time) (model.PeriodCounts, error)
	Recent(ctx context.Context, kind model.EntityKind, limit int) ([]model.ActivityItem, error)
}
