package types

import "github.com/backedfi/fiat-bridge/internal/utils"

// Enum values for caller roles
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleApprover Role = "APPROVER"
	RoleBridger  Role = "BRIDGER"
)

func (r Role) String() string {
	return string(r)
}

// Caller identifies who invokes a bridge operation together with the roles
// granted to them. Operations check roles only through the caller value they
// receive, never through any ambient lookup.
type Caller struct {
	ID    string
	Roles []Role
}

func NewCaller(id string, roles ...Role) Caller {
	return Caller{
		ID:    id,
		Roles: roles,
	}
}

func (c Caller) HasRole(role Role) bool {
	return utils.Contains(c.Roles, role)
}
