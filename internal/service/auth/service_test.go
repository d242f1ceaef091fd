package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-erp/erp-backend-go/internal/domain/auth"
	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmployeeID(ctx context.Context, employeeID string) (user.User, error) {
	for _, u := range f.users {
		if u.EmployeeID != nil && *u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Code == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fakeJWTService struct {
	revoked map[string]bool
}

func (f *fakeJWTService) GenerateAccessToken(userID string, email string, employeeID *string, role user.Role) (string, int64, error) {
	return "access-" + userID, 3600, nil
}

func (f *fakeJWTService) GenerateRefreshToken(userID string) (string, int64, error) {
	return "refresh-" + userID, 86400, nil
}

func (f *fakeJWTService) GenerateStreamToken(userID string) (string, int, error) {
	return "stream-" + userID, 300, nil
}

func (f *fakeJWTService) ValidateStreamToken(tokenString string) (string, error) {
	return "", nil
}

func (f *fakeJWTService) ValidateRefreshToken(tokenString string) (string, error) {
	if len(tokenString) > 8 && tokenString[:8] == "refresh-" {
		return tokenString[8:], nil
	}
	return "", assert.AnError
}

func (f *fakeJWTService) JWTAuth() *jwtauth.JWTAuth { return nil }

func (f *fakeJWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{}
}

func (f *fakeJWTService) RevokeToken(token string) {
	f.revoked[token] = true
}

func (f *fakeJWTService) IsTokenRevoked(token string) bool {
	return f.revoked[token]
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(t *testing.T) (auth.AuthService, *fakeJWTService) {
	t.Helper()

	empID := "emp-1"
	users := &fakeUserRepo{users: map[string]user.User{
		"usr-1": {
			ID:           "usr-1",
			Email:        "admin@example.com",
			PasswordHash: hashPassword(t, "secret"),
			Role:         user.RoleAdmin,
		},
		"usr-2": {
			ID:           "usr-2",
			Email:        "jane@example.com",
			PasswordHash: hashPassword(t, "portal-pass"),
			Role:         user.RoleEmployee,
			EmployeeID:   &empID,
		},
	}}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Code: "1001-0001", Status: employee.EmploymentStatusActive},
		"emp-2": {ID: "emp-2", Code: "1001-0002", Status: employee.EmploymentStatusTerminated},
	}}
	jwtSvc := &fakeJWTService{revoked: map[string]bool{}}

	return NewAuthService(users, employees, jwtSvc, nil), jwtSvc
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-usr-1", tokens.AccessToken)
	assert.Equal(t, "refresh-usr-1", tokens.RefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginWithEmployeeCode(t *testing.T) {
	svc, _ := newTestService(t)

	tokens, err := svc.LoginWithEmployeeCode(context.Background(), auth.LoginEmployeeCodeRequest{
		EmployeeCode: "1001-0001",
		Password:     "portal-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-usr-2", tokens.AccessToken)
}

func TestLoginWithEmployeeCodeTerminated(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.LoginWithEmployeeCode(context.Background(), auth.LoginEmployeeCodeRequest{
		EmployeeCode: "1001-0002",
		Password:     "portal-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmployeeCode)
}

func TestGoogleLoginDisabled(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.GoogleAuthURL()
	assert.ErrorIs(t, err, auth.ErrGoogleLoginDisabled)

	_, err = svc.LoginWithGoogleCode(context.Background(), "code")
	assert.ErrorIs(t, err, auth.ErrGoogleLoginDisabled)
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.RefreshToken(context.Background(), "refresh-usr-1")
	require.NoError(t, err)
	assert.Equal(t, "access-usr-1", resp.AccessToken)
}

func TestRefreshTokenRevokedAfterLogout(t *testing.T) {
	svc, jwtSvc := newTestService(t)

	err := svc.Logout(context.Background(), "refresh-usr-1")
	require.NoError(t, err)
	assert.True(t, jwtSvc.IsTokenRevoked("refresh-usr-1"))

	_, err = svc.RefreshToken(context.Background(), "refresh-usr-1")
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
