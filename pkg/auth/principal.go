package auth

import "github.com/google/uuid"

// RoleAdmin is the only role admin-guarded routes accept.
const RoleAdmin = "admin"

// Principal is the authenticated identity attached to a request. It is
// either a UserPrincipal or an AdminPrincipal; the two never substitute
// for each other.
type Principal interface {
	Subject() uuid.UUID
	principal()
}

// UserPrincipal is a couple account from the users table.
type UserPrincipal struct {
	UserID uuid.UUID
	Email  string
}

func (p UserPrincipal) Subject() uuid.UUID { return p.UserID }
func (UserPrincipal) principal()           {}

// AdminPrincipal is a back-office account from the admin_users table.
type AdminPrincipal struct {
	AdminID uuid.UUID
	Email   string
	Role    string
}

func (p AdminPrincipal) Subject() uuid.UUID { return p.AdminID }
func (AdminPrincipal) principal()           {}

// IsAdmin reports whether the admin carries the admin role.
func (p AdminPrincipal) IsAdmin() bool { return p.Role == RoleAdmin }
