package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/storerating/internal/domain/errors"
	"github.com/polkiloo/storerating/internal/domain/model"
	"github.com/polkiloo/storerating/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storerating/internal/pkg/auth"
)

// UserUseCase covers administrative account management.
type UserUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher}
}

// Create adds an account with any role, defaulting to customer.
func (u *UserUseCase) Create(ctx context.Context, in model.UserInput) (*model.User, error) {
	return createUser(ctx, u.users, u.hasher, in, true)
}

// List returns accounts newest first, optionally narrowed by role and a search term.
func (u *UserUseCase) List(ctx context.Context, role, search string) ([]model.User, error) {
	filter := model.UserFilter{Search: strings.TrimSpace(search)}
	if role = strings.TrimSpace(role); role != "" {
		parsed, ok := model.ParseRole(role)
		if !ok {
			return nil, domainErrors.NewValidationError("role", "Invalid role")
		}
		filter.Role = parsed
	}
	return u.users.List(ctx, filter)
}

// SeedAdmin creates the administrator account unless the email is already taken.
// It reports whether a row was inserted.
func (u *UserUseCase) SeedAdmin(ctx context.Context, name, email, password string) (bool, error) {
	name, err := ValidateName(name)
	if err != nil {
		return false, err
	}
	email, err = NormalizeEmail("email", email)
	if err != nil {
		return false, err
	}
	if password == "" {
		return false, domainErrors.NewValidationError("password", "Password is required")
	}
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return false, err
	}
	return u.users.EnsureExists(ctx, model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	})
}

func createUser(ctx context.Context, users repository.UserRepository, hasher pkgAuth.PasswordHasher, in model.UserInput, allowAdmin bool) (*model.User, error) {
	name, err := ValidateName(in.Name)
	if err != nil {
		return nil, err
	}
	email, err := NormalizeEmail("email", in.Email)
	if err != nil {
		return nil, err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	address, err := ValidateAddress(in.Address)
	if err != nil {
		return nil, err
	}
	role, err := parseRole(in.Role, allowAdmin)
	if err != nil {
		return nil, err
	}

	hash, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	usr, err := users.Create(ctx, model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Address:      address,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrUserExists
		}
		return nil, err
	}
	return usr, nil
}
