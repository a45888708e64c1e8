package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	domainErrors "github.com/polkiloo/storerating/internal/domain/errors"
	"github.com/polkiloo/storerating/internal/domain/model"
)

const (
	nameMinLen      = 3
	nameMaxLen      = 60
	storeNameMaxLen = 60
	passwordMinLen  = 8
	passwordMaxLen  = 16
	addressMaxLen   = 400
	commentMaxLen   = 500

	passwordSpecials = `!@#$%^&*(),.?":{}|<>`
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateName trims the display name and checks its length.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	switch {
	case n < nameMinLen:
		return "", domainErrors.NewValidationError("name", "Name must be at least 3 characters")
	case n > nameMaxLen:
		return "", domainErrors.NewValidationError("name", "Name cannot exceed 60 characters")
	}
	return name, nil
}

// NormalizeEmail trims and lower-cases the address after checking its shape.
func NormalizeEmail(field, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return "", domainErrors.NewValidationError(field, "Please enter a valid email address")
	}
	return email, nil
}

// ValidatePassword enforces length, an uppercase letter and a special character.
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	switch {
	case n < passwordMinLen:
		return domainErrors.NewValidationError("password", "Password must be at least 8 characters")
	case n > passwordMaxLen:
		return domainErrors.NewValidationError("password", "Password cannot exceed 16 characters")
	case strings.IndexFunc(password, unicode.IsUpper) < 0:
		return domainErrors.NewValidationError("password", "Password must include at least one uppercase letter")
	case !strings.ContainsAny(password, passwordSpecials):
		return domainErrors.NewValidationError("password", "Password must include at least one special character")
	}
	return nil
}

// ValidateAddress trims the address and caps its length.
func ValidateAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if utf8.RuneCountInString(address) > addressMaxLen {
		return "", domainErrors.NewValidationError("address", "Address cannot exceed 400 characters")
	}
	return address, nil
}

// ValidateStoreName trims the store name and checks its length.
func ValidateStoreName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	switch {
	case n == 0:
		return "", domainErrors.NewValidationError("name", "Store name is required")
	case n > storeNameMaxLen:
		return "", domainErrors.NewValidationError("name", "Store name cannot exceed 60 characters")
	}
	return name, nil
}

// ValidateRating accepts integers from model.MinRating to model.MaxRating.
func ValidateRating(value int) error {
	if value < model.MinRating || value > model.MaxRating {
		return domainErrors.NewValidationError("rating", "Rating must be between 1 and 5")
	}
	return nil
}

// NormalizeComment maps blank comments to nil.
func NormalizeComment(comment *string) (*string, error) {
	if comment == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > commentMaxLen {
		return nil, domainErrors.NewValidationError("comment", "Comment cannot exceed 500 characters")
	}
	return &trimmed, nil
}

func parseRole(raw string, allowAdmin bool) (model.Role, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.RoleCustomer, nil
	}
	role, ok := model.ParseRole(raw)
	if !ok || (role == model.RoleAdmin && !allowAdmin) {
		return "", domainErrors.NewValidationError("role", "Invalid role")
	}
	return role, nil
}
