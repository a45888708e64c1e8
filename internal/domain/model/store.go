package model

import "time"

// Store is a rateable shop, optionally owned by a store owner.
type Store struct {
	ID        int64
	Name      string
	Email     string
	Address   string
	OwnerID   *int64
	CreatedAt time.Time
}

// StoreSummary is a store with the raw rating totals used for aggregation.
type StoreSummary struct {
	Store
	OwnerName   string
	RatingSum   int64
	RatingCount int64
	UserRating  *int
}

// RatingStats holds derived aggregate values for a store.
type RatingStats struct {
	AverageRating float64
	TotalRatings  int64
}

// StoreInput carries the raw fields accepted when a store is created.
type StoreInput struct {
	Name       string
	Email      string
	Address    string
	OwnerEmail string
}
