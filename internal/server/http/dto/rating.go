package dto

import (
	"time"

	"github.com/polkiloo/storerating/internal/domain/model"
)

// RatingRequest is the rating submission payload.
type RatingRequest struct {
	StoreID int64   `json:"storeId"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// RatingResponse describes a rating row with the joined names when present.
type RatingResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	StoreID   int64     `json:"store_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	StoreName string    `json:"store_name,omitempty"`
	UserName  string    `json:"user_name,omitempty"`
}

// NewRatingResponse maps model.Rating onto RatingResponse.
func NewRatingResponse(r model.Rating) RatingResponse {
	return RatingResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		StoreID:   r.StoreID,
		Rating:    r.Value,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// NewRatingViews maps joined ratings, never returning nil.
func NewRatingViews(views []model.RatingView) []RatingResponse {
	out := make([]RatingResponse, 0, len(views))
	for _, v := range views {
		resp := NewRatingResponse(v.Rating)
		resp.StoreName = v.StoreName
		resp.UserName = v.UserName
		out = append(out, resp)
	}
	return out
}

// RatingSubmittedResponse is returned after a rating upsert.
type RatingSubmittedResponse struct {
	Message string         `json:"message"`
	Rating  RatingResponse `json:"rating"`
}
