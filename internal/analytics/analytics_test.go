package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/storerating/internal/domain/model"
)

func summaryOf(id int64, ratings ...int) model.StoreSummary {
	s := model.StoreSummary{Store: model.Store{ID: id}}
	for _, r := range ratings {
		s.RatingSum += int64(r)
		s.RatingCount++
	}
	return s
}

func TestSummarize(t *testing.T) {
	t.Run("no ratings", func(t *testing.T) {
		stats := Summarize(0, 0)
		assert.Equal(t, 0.0, stats.AverageRating)
		assert.Equal(t, int64(0), stats.TotalRatings)
	})

	t.Run("single rating", func(t *testing.T) {
		stats := Summarize(4, 1)
		assert.Equal(t, 4.0, stats.AverageRating)
		assert.Equal(t, int64(1), stats.TotalRatings)
	})

	t.Run("ratings then one more", func(t *testing.T) {
		s := summaryOf(1, 5, 4, 3)
		stats := Summarize(s.RatingSum, s.RatingCount)
		assert.Equal(t, 4.0, stats.AverageRating)
		assert.Equal(t, int64(3), stats.TotalRatings)

		s = summaryOf(1, 5, 4, 3, 2)
		stats = Summarize(s.RatingSum, s.RatingCount)
		assert.Equal(t, 3.5, stats.AverageRating)
		assert.Equal(t, int64(4), stats.TotalRatings)
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		assert.Equal(t, 3.67, Summarize(11, 3).AverageRating)
	})
}

func TestRankStores(t *testing.T) {
	stores := []model.StoreSummary{
		summaryOf(1),
		summaryOf(2, 4, 4),
		summaryOf(3, 5),
		summaryOf(4, 4, 4, 4),
		summaryOf(5, 3, 5),
	}

	ranked := RankStores(stores)
	ids := make([]int64, 0, len(ranked))
	for _, s := range ranked {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{3, 4, 2, 5, 1}, ids)
	assert.Equal(t, int64(1), stores[0].ID, "input must not be reordered")
}

func TestRankStoresTieBreakByID(t *testing.T) {
	ranked := RankStores([]model.StoreSummary{summaryOf(9), summaryOf(2), summaryOf(5)})
	require.Len(t, ranked, 3)
	assert.Equal(t, int64(2), ranked[0].ID)
	assert.Equal(t, int64(5), ranked[1].ID)
	assert.Equal(t, int64(9), ranked[2].ID)
}

func TestTopStores(t *testing.T) {
	stores := []model.StoreSummary{summaryOf(1, 1), summaryOf(2, 5), summaryOf(3, 3)}
	top := TopStores(stores, 2)
	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].ID)
	assert.Equal(t, int64(3), top[1].ID)

	assert.Len(t, TopStores(stores, 10), 3)
	assert.Empty(t, TopStores(nil, 5))
}

func TestDailySeries(t *testing.T) {
	now := time.Date(2024, time.March, 3, 15, 4, 5, 0, time.UTC)

	series := DailySeries(now, time.UTC,
		[]model.DayCount{{Day: "2024-03-03", Count: 2}, {Day: "2024-02-26", Count: 1}, {Day: "2024-02-20", Count: 9}},
		[]model.DayCount{{Day: "2024-03-01", Count: 1}},
		[]model.DayCount{{Day: "2024-03-02", Count: 3}, {Day: "2024-03-02", Count: 1}},
	)

	require.Len(t, series, WindowDays)

	wantDates := []string{"2024-02-26", "2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02", "2024-03-03"}
	wantLabels := []string{"Feb 26", "Feb 27", "Feb 28", "Feb 29", "Mar 1", "Yesterday", "Today"}
	for i, day := range series {
		assert.Equal(t, wantDates[i], day.Date)
		assert.Equal(t, wantLabels[i], day.Label)
		assert.Equal(t, i == WindowDays-1, day.IsToday)
	}

	assert.Equal(t, int64(1), series[0].Users)
	assert.Equal(t, int64(2), series[6].Users)
	assert.Equal(t, int64(1), series[4].Stores)
	assert.Equal(t, int64(4), series[5].Ratings)
	assert.Equal(t, int64(0), series[3].Users+series[3].Stores+series[3].Ratings)
}

func TestDailySeriesWithoutData(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	series := DailySeries(now, time.UTC, nil, nil, nil)

	require.Len(t, series, WindowDays)
	assert.Equal(t, "2023-12-26", series[0].Date)
	assert.Equal(t, "Today", series[6].Label)
	assert.Equal(t, "2024-01-01", series[6].Date)
	for i := 1; i < len(series); i++ {
		assert.True(t, series[i-1].Date < series[i].Date, "series must be chronological")
	}
}

func TestDailySeriesUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 20:00 UTC on Jan 10 is already Jan 11 at UTC+10
	now := time.Date(2024, time.January, 10, 20, 0, 0, 0, time.UTC)

	series := DailySeries(now, loc, nil, nil, nil)
	assert.Equal(t, "2024-01-11", series[6].Date)
	assert.Equal(t, "2024-01-10", series[5].Date)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, loc), WindowStart(now, loc))
}

func TestMonthBounds(t *testing.T) {
	prev, cur := MonthBounds(time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), prev)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), cur)

	prev, cur = MonthBounds(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), prev)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), cur)
}

func TestGrowth(t *testing.T) {
	cases := []struct {
		name              string
		current, previous int64
		want              float64
	}{
		{"both empty", 0, 0, GrowthSentinel},
		{"no previous", 7, 0, GrowthSentinel},
		{"doubled", 10, 5, 100},
		{"halved", 5, 10, -50},
		{"flat", 4, 4, 0},
		{"rounded", 4, 3, 33.3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Growth(tc.current, tc.previous))
		})
	}

	stat := NewGrowthStat(model.PeriodCounts{Current: 3, Previous: 2})
	assert.Equal(t, model.GrowthStat{Current: 3, Previous: 2, Growth: 50}, stat)
}

func TestMergeRecent(t *testing.T) {
	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	feed := func(kind model.EntityKind, offsets ...int) []model.ActivityItem {
		items := make([]model.ActivityItem, 0, len(offsets))
		for _, off := range offsets {
			items = append(items, model.ActivityItem{Kind: kind, Time: base.Add(time.Duration(off) * time.Minute)})
		}
		return items
	}

	merged := MergeRecent(RecentLimit,
		feed(model.EntityUser, 50, 40, 30, 20, 10),
		feed(model.EntityStore, 45, 35, 25, 15, 5),
		feed(model.EntityRating, 60, 1, 2, 3, 4),
	)

	require.Len(t, merged, RecentLimit)
	assert.Equal(t, model.EntityRating, merged[0].Kind)
	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Time.After(merged[i-1].Time), "feed must be newest first")
	}
	assert.Equal(t, base.Add(10*time.Minute), merged[RecentLimit-1].Time)

	assert.Empty(t, MergeRecent(RecentLimit))
	assert.NotNil(t, MergeRecent(RecentLimit))
	assert.Len(t, MergeRecent(RecentLimit, feed(model.EntityUser, 1, 2)), 2)
}
