package user

import "github.com/google/uuid"

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleDecorator Role = "decorator"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDecorator, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor identifies who is invoking a command. Authorization decisions in the
// usecase layer are made against this value, never against ambient state.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

func (a Actor) IsAdmin() bool     { return a.Role == RoleAdmin }
func (a Actor) IsDecorator() bool { return a.Role == RoleDecorator }
func (a Actor) IsCustomer() bool  { return a.Role == RoleCustomer }
