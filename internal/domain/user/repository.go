package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (User, error)
	GetByRoles(ctx context.Context, roles []Role) ([]User, error)
	UpdateGoogleID(ctx context.Context, id string, googleID string) error
}
