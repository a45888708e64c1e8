// Package analytics derives rating aggregates and platform activity figures
// from raw counts returned by storage.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/polkiloo/storerating/internal/domain/model"
)

const (
	// WindowDays is the length of the trailing daily activity series.
	WindowDays = 7
	// GrowthSentinel is reported when the previous period has no rows.
	GrowthSentinel = 100.0
	// RecentPerKind is how many of the newest rows are read per entity.
	RecentPerKind = 5
	// RecentLimit caps the merged activity feed.
	RecentLimit = 10
	// TopStoresLimit caps the dashboard ranking.
	TopStoresLimit = 5

	dayLayout   = "2006-01-02"
	labelLayout = "Jan 2"
)

// Summarize derives the average and count from a store's rating totals.
func Summarize(sum, count int64) model.RatingStats {
	if count <= 0 {
		return model.RatingStats{}
	}
	return model.RatingStats{
		AverageRating: round(float64(sum)/float64(count), 2),
		TotalRatings:  count,
	}
}

// RankStores returns a copy ordered by average rating, then rating count, both descending.
func RankStores(stores []model.StoreSummary) []model.StoreSummary {
	ranked := make([]model.StoreSummary, len(stores))
	copy(ranked, stores)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		// compare sumA/countA with sumB/countB without float rounding
		left := a.RatingSum * max(b.RatingCount, 1)
		right := b.RatingSum * max(a.RatingCount, 1)
		if a.RatingCount == 0 {
			left = 0
		}
		if b.RatingCount == 0 {
			right = 0
		}
		if left != right {
			return left > right
		}
		if a.RatingCount != b.RatingCount {
			return a.RatingCount > b.RatingCount
		}
		return a.ID < b.ID
	})
	return ranked
}

// TopStores returns at most limit stores from the ranking.
func TopStores(stores []model.StoreSummary, limit int) []model.StoreSummary {
	ranked := RankStores(stores)
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// WindowStart is midnight of the first day of the trailing window in loc.
func WindowStart(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d-(WindowDays-1), 0, 0, 0, 0, loc)
}

// DailySeries builds exactly WindowDays buckets ending today, oldest first.
// Counts for days outside the window are ignored.
func DailySeries(now time.Time, loc *time.Location, users, stores, ratings []model.DayCount) []model.DailyActivity {
	userCounts := index(users)
	storeCounts := index(stores)
	ratingCounts := index(ratings)

	start := WindowStart(now, loc)
	series := make([]model.DailyActivity, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		day := time.Date(start.Year(), start.Month(), start.Day()+i, 0, 0, 0, 0, loc)
		key := day.Format(dayLayout)
		series = append(series, model.DailyActivity{
			Date:    key,
			Label:   dayLabel(day, WindowDays-1-i),
			Users:   userCounts[key],
			Stores:  storeCounts[key],
			Ratings: ratingCounts[key],
			IsToday: i == WindowDays-1,
		})
	}
	return series
}

func dayLabel(day time.Time, daysAgo int) string {
	switch daysAgo {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return day.Format(labelLayout)
	}
}

func index(counts []model.DayCount) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for _, c := range counts {
		out[c.Day] += c.Count
	}
	return out
}

// MonthBounds returns the first instants of the previous and the current calendar month.
func MonthBounds(now time.Time, loc *time.Location) (previousStart, currentStart time.Time) {
	local := now.In(loc)
	currentStart = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	previousStart = currentStart.AddDate(0, -1, 0)
	return previousStart, currentStart
}

// Growth is the month-over-month change in percent, rounded to one decimal.
func Growth(current, previous int64) float64 {
	if previous == 0 {
		return GrowthSentinel
	}
	return round(float64(current-previous)/float64(previous)*100, 1)
}

// NewGrowthStat pairs period counts with their growth percentage.
func NewGrowthStat(counts model.PeriodCounts) model.GrowthStat {
	return model.GrowthStat{
		Current:  counts.Current,
		Previous: counts.Previous,
		Growth:   Growth(counts.Current, counts.Previous),
	}
}

// MergeRecent merges activity feeds newest first and keeps at most limit items.
func MergeRecent(limit int, feeds ...[]model.ActivityItem) []model.ActivityItem {
	var merged []model.ActivityItem
	for _, feed := range feeds {
		merged = append(merged, feed...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Time.After(merged[j].Time)
	})
	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	if merged == nil {
		merged = []model.ActivityItem{}
	}
	return merged
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
