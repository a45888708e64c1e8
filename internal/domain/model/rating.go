package model

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a single user's evaluation of a store.
type Rating struct {
	ID        int64
	UserID    int64
	StoreID   int64
	Value     int
	Comment   *string
	CreatedAt time.Time
}

// RatingView is a rating joined with the names shown alongside it.
type RatingView struct {
	Rating
	StoreName string
	UserName  string
}
