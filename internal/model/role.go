package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleCollector  Role = "COLLECTOR"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// ParseRole accepts the role name or the legacy numeric code still
// carried by tokens issued before the enum migration
// (0 customer, 1 collector, 2 super admin, 3 admin).
func ParseRole(raw string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CUSTOMER", "0":
		return RoleCustomer, nil
	case "COLLECTOR", "1":
		return RoleCollector, nil
	case "SUPER_ADMIN", "SUPERADMIN", "2":
		return RoleSuperAdmin, nil
	case "ADMIN", "3":
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Principal is the already-authenticated caller identity. Issuing and
// verifying credentials is the auth service's job; core operations only
// consume this.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) IsCustomer() bool   { return p.Role == RoleCustomer }
func (p Principal) IsCollector() bool  { return p.Role == RoleCollector }
func (p Principal) IsAdmin() bool      { return p.Role == RoleAdmin }
func (p Principal) IsSuperAdmin() bool { return p.Role == RoleSuperAdmin }
