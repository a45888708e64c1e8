package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storerating/internal/server/http/dto"
	"github.com/polkiloo/storerating/internal/server/http/middleware"
)

// StoreHandler serves the store owner endpoints.
type StoreHandler struct {
	facade OwnerFacade
}

// NewStoreHandler constructs StoreHandler.
func NewStoreHandler(facade OwnerFacade) *StoreHandler {
	return &StoreHandler{facade: facade}
}

// MyStores handles GET /api/store/my-stores.
func (h *StoreHandler) MyStores(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	stores, err := h.facade.OwnedStores(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStoreSummaries(stores, dto.OwnerView))
}

// Ratings handles GET /api/store/:id/ratings.
func (h *StoreHandler) Ratings(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || storeID <= 0 {
		respondMessage(c, http.StatusBadRequest, "Invalid store ID")
		return
	}

	ratings, err := h.facade.StoreRatings(c.Request.Context(), user, storeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRatingViews(ratings))
}
