package dto

import (
	"time"

	"github.com/polkiloo/storerating/internal/analytics"
	"github.com/polkiloo/storerating/internal/domain/model"
)

// CreateStoreRequest is the admin store creation payload.
type CreateStoreRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	OwnerEmail string `json:"ownerEmail"`
}

// Input converts the payload into usecase input.
func (r CreateStoreRequest) Input() model.StoreInput {
	return model.StoreInput{
		Name:       r.Name,
		Email:      r.Email,
		Address:    r.Address,
		OwnerEmail: r.OwnerEmail,
	}
}

// StoreResponse describes a plain store row.
type StoreResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   *int64    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStoreResponse maps model.Store onto StoreResponse.
func NewStoreResponse(s model.Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Address:   s.Address,
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
	}
}

// StoreCreatedResponse is returned by admin store creation.
type StoreCreatedResponse struct {
	Message string        `json:"message"`
	Store   StoreResponse `json:"store"`
}

// StoreSummaryResponse is a store with its derived rating aggregates.
// OwnerName is only set on admin listings, UserRating only on rater listings.
type StoreSummaryResponse struct {
	StoreResponse
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
	OwnerName     *string `json:"owner_name,omitempty"`
	UserRating    *int    `json:"user_rating,omitempty"`
}

// SummaryView selects the role-specific fields of a store listing.
type SummaryView int

const (
	OwnerView SummaryView = iota
	AdminView
	RaterView
)

// NewStoreSummaries maps summaries for the given view, never returning nil.
func NewStoreSummaries(summaries []model.StoreSummary, view SummaryView) []StoreSummaryResponse {
	out := make([]StoreSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, NewStoreSummary(s, view))
	}
	return out
}

// NewStoreSummary maps one summary, deriving the average from its totals.
func NewStoreSummary(s model.StoreSummary, view SummaryView) StoreSummaryResponse {
	stats := analytics.Summarize(s.RatingSum, s.RatingCount)
	resp := StoreSummaryResponse{
		StoreResponse: NewStoreResponse(s.Store),
		AverageRating: stats.AverageRating,
		TotalRatings:  stats.TotalRatings,
	}
	switch view {
	case AdminView:
		if s.OwnerName != "" {
			name := s.OwnerName
			resp.OwnerName = &name
		}
	case RaterView:
		resp.UserRating = s.UserRating
	}
	return resp
}
