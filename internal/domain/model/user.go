package model

import "time"

// Role is the closed set of user roles.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleStoreOwner Role = "store_owner"
	RoleAdmin      Role = "admin"
)

// Capability names an action guarded by role.
type Capability int

const (
	CapRateStores Capability = iota
	CapManageOwnStores
	CapViewAnyStore
	CapAdministerPlatform
)

var capabilities = map[Role][]Capability{
	RoleCustomer:   {CapRateStores},
	RoleStoreOwner: {CapRateStores, CapManageOwnStores},
	RoleAdmin:      {CapRateStores, CapManageOwnStores, CapViewAnyStore, CapAdministerPlatform},
}

// ParseRole converts raw input into a known role.
func ParseRole(raw string) (Role, bool) {
	role := Role(raw)
	if _, ok := capabilities[role]; !ok {
		return "", false
	}
	return role, true
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	_, ok := capabilities[r]
	return ok
}

// Can reports whether the role grants the capability.
func (r Role) Can(c Capability) bool {
	for _, granted := range capabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}

// User represents a registered account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Address      string
	Role         Role
	CreatedAt    time.Time
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Role   Role
	Search string
}

// UserInput carries the raw fields accepted when an account is created.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     string
}
