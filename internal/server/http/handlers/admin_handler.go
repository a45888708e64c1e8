package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storerating/internal/server/http/dto"
)

// AdminHandler serves the platform administration endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Users handles GET /api/admin/users with optional role and search filters.
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context(), c.Query("role"), c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(users))
}

// CreateUser handles POST /api/admin/users.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := h.facade.CreateUser(c.Request.Context(), req.Input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.UserCreatedResponse{
		Message: "User created successfully",
		User:    dto.NewUserResponse(*user),
	})
}

// Stores handles GET /api/admin/stores.
func (h *AdminHandler) Stores(c *gin.Context) {
	stores, err := h.facade.Stores(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStoreSummaries(stores, dto.AdminView))
}

// CreateStore handles POST /api/admin/stores.
func (h *AdminHandler) CreateStore(c *gin.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	store, err := h.facade.CreateStore(c.Request.Context(), req.Input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StoreCreatedResponse{
		Message: "Store created successfully",
		Store:   dto.NewStoreResponse(*store),
	})
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDashboardResponse(*dashboard))
}

// Activity handles GET /api/admin/dashboard/activity.
func (h *AdminHandler) Activity(c *gin.Context) {
	report, err := h.facade.Activity(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewActivityResponse(*report))
}
