package dto

import (
	"time"

	"github.com/polkiloo/storerating/internal/domain/model"
)

const currentDateLayout = "Mon Jan 2 2006"

// DashboardResponse is the admin overview.
type DashboardResponse struct {
	TotalUsers   int64                  `json:"totalUsers"`
	TotalStores  int64                  `json:"totalStores"`
	TotalRatings int64                  `json:"totalRatings"`
	TopStores    []StoreSummaryResponse `json:"topStores"`
}

// NewDashboardResponse maps model.Dashboard.
func NewDashboardResponse(d model.Dashboard) DashboardResponse {
	return DashboardResponse{
		TotalUsers:   d.Totals.Users,
		TotalStores:  d.Totals.Stores,
		TotalRatings: d.Totals.Ratings,
		TopStores:    NewStoreSummaries(d.TopStores, AdminView),
	}
}

type DailyStat struct {
	Date      string `json:"date"`
	DateLabel string `json:"dateLabel"`
	Users     int64  `json:"users"`
	Stores    int64  `json:"stores"`
	Ratings   int64  `json:"ratings"`
	IsToday   bool   `json:"isToday"`
}

type GrowthStat struct {
	Current  int64   `json:"current"`
	Previous int64   `json:"previous"`
	Growth   float64 `json:"growth"`
}

type MonthlyGrowth struct {
	Users   GrowthStat `json:"users"`
	Stores  GrowthStat `json:"stores"`
	Ratings GrowthStat `json:"ratings"`
}

type ActivityItem struct {
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Time     time.Time `json:"time"`
}

// ActivityResponse is the admin activity view.
type ActivityResponse struct {
	DailyStats     []DailyStat    `json:"dailyStats"`
	MonthlyGrowth  MonthlyGrowth  `json:"monthlyGrowth"`
	RecentActivity []ActivityItem `json:"recentActivity"`
	ServerTime     string         `json:"serverTime"`
	CurrentDate    string         `json:"currentDate"`
}

// NewActivityResponse maps model.ActivityReport.
func NewActivityResponse(r model.ActivityReport) ActivityResponse {
	daily := make([]DailyStat, 0, len(r.Daily))
	for _, d := range r.Daily {
		daily = append(daily, DailyStat{
			Date:      d.Date,
			DateLabel: d.Label,
			Users:     d.Users,
			Stores:    d.Stores,
			Ratings:   d.Ratings,
			IsToday:   d.IsToday,
		})
	}
	recent := make([]ActivityItem, 0, len(r.Recent))
	for _, item := range r.Recent {
		recent = append(recent, ActivityItem{
			Type:     string(item.Kind),
			Title:    item.Title,
			Subtitle: item.Subtitle,
			Time:     item.Time,
		})
	}
	return ActivityResponse{
		DailyStats: daily,
		MonthlyGrowth: MonthlyGrowth{
			Users:   growthStat(r.Growth.Users),
			Stores:  growthStat(r.Growth.Stores),
			Ratings: growthStat(r.Growth.Ratings),
		},
		RecentActivity: recent,
		ServerTime:     r.Now.Format(time.RFC3339),
		CurrentDate:    r.Now.Format(currentDateLayout),
	}
}

func growthStat(g model.GrowthStat) GrowthStat {
	return GrowthStat{Current: g.Current, Previous: g.Previous, Growth: g.Growth}
}
