package user

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which dashboard view a user belongs to.
type Role string

const (
	RoleCharterer     Role = "charterer"
	RoleOperator      Role = "operator"
	RoleVessel        Role = "vessel"
	RoleSupplier      Role = "supplier"
	RoleVesselManager Role = "vessel_manager"
	RoleAdmin         Role = "admin"
)

// Roles lists every valid role value.
var Roles = []Role{
	RoleCharterer,
	RoleOperator,
	RoleVessel,
	RoleSupplier,
	RoleVesselManager,
	RoleAdmin,
}

func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents an actor in one of the bunker management roles.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           Role      `json:"role"`
	Company        string    `json:"company"`
	PasswordHashed string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
