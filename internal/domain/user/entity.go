package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	GoogleID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanApprove reports whether the role may decide leave applications and
// reconciliation requests.
func (r Role) CanApprove() bool {
	return r == RoleAdmin || r == RoleHR
}
