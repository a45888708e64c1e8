package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storerating/internal/domain/errors"
	"github.com/polkiloo/storerating/internal/server/http/dto"
)

const (
	msgInvalidBody = "Invalid request body"
	msgServerError = "Server error"
)

// writeError maps domain errors onto HTTP status codes and messages.
// Unexpected errors are attached to the context for the request logger.
func writeError(c *gin.Context, err error) {
	var validation *domainErrors.ValidationError
	switch {
	case errors.As(err, &validation):
		respondMessage(c, http.StatusBadRequest, validation.Message)
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		respondMessage(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domainErrors.ErrUnauthorized):
		respondMessage(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, domainErrors.ErrForbidden):
		respondMessage(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, domainErrors.ErrStoreNotFound):
		respondMessage(c, http.StatusNotFound, "Store not found")
	case errors.Is(err, domainErrors.ErrNotFound):
		respondMessage(c, http.StatusNotFound, "Not found")
	case errors.Is(err, domainErrors.ErrUserExists):
		respondMessage(c, http.StatusConflict, "User already exists")
	case errors.Is(err, domainErrors.ErrStoreExists):
		respondMessage(c, http.StatusConflict, "Store with this email already exists")
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		respondMessage(c, http.StatusConflict, "Already exists")
	default:
		_ = c.Error(err)
		respondMessage(c, http.StatusInternalServerError, msgServerError)
	}
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.MessageResponse{Message: message})
}
