package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storerating/internal/server/http/dto"
	"github.com/polkiloo/storerating/internal/server/http/middleware"
)

// UserHandler serves store browsing and rating for authenticated users.
type UserHandler struct {
	facade RaterFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade RaterFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Stores handles GET /api/user/stores.
func (h *UserHandler) Stores(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	stores, err := h.facade.StoresForRater(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStoreSummaries(stores, dto.RaterView))
}

// SubmitRating handles POST /api/user/ratings.
func (h *UserHandler) SubmitRating(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	rating, created, err := h.facade.SubmitRating(c.Request.Context(), user.ID, req.StoreID, req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}

	message := "Rating updated successfully"
	if created {
		message = "Rating submitted successfully"
	}
	c.JSON(http.StatusOK, dto.RatingSubmittedResponse{
		Message: message,
		Rating:  dto.NewRatingResponse(*rating),
	})
}

// MyRatings handles GET /api/user/my-ratings.
func (h *UserHandler) MyRatings(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	ratings, err := h.facade.MyRatings(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRatingViews(ratings))
}
