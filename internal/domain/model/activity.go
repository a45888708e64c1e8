package model

import "time"

// EntityKind identifies the table an activity entry comes from.
type EntityKind string

const (
	EntityUser   EntityKind = "user"
	EntityStore  EntityKind = "store"
	EntityRating EntityKind = "rating"
)

// DayCount is the number of rows created on a calendar day (YYYY-MM-DD).
type DayCount struct {
	Day   string
	Count int64
}

// DailyActivity is one bucket of the trailing activity series.
type DailyActivity struct {
	Date    string
	Label   string
	Users   int64
	Stores  int64
	Ratings int64
	IsToday bool
}

// PeriodCounts compares row counts between the current and previous month.
type PeriodCounts struct {
	Current  int64
	Previous int64
}

// GrowthStat is a month-over-month comparison with its percentage.
type GrowthStat struct {
	Current  int64
	Previous int64
	Growth   float64
}

// MonthlyGrowth groups growth figures per entity.
type MonthlyGrowth struct {
	Users   GrowthStat
	Stores  GrowthStat
	Ratings GrowthStat
}

// ActivityItem is an entry of the recent activity feed.
type ActivityItem struct {
	Kind     EntityKind
	Title    string
	Subtitle string
	Time     time.Time
}

// PlatformTotals holds row counts per entity.
type PlatformTotals struct {
	Users   int64
	Stores  int64
	Ratings int64
}

// Dashboard is the admin overview.
type Dashboard struct {
	Totals    PlatformTotals
	TopStores []StoreSummary
}

// ActivityReport is the admin activity view.
type ActivityReport struct {
	Daily  []DailyActivity
	Growth MonthlyGrowth
	Recent []ActivityItem
	Now    time.Time
}
