package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"garage/internal/auth"
	apperrors "garage/internal/errors"
	"garage/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret", time.Minute, time.Hour)
}

func storedUser(t *testing.T, username, password string, role model.Role) *model.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)
	return &model.User{ID: 1, Username: username, PasswordHash: hash, Role: role}
}

func TestLoginSuccess(t *testing.T) {
	repo := new(MockUserRepository)
	user := storedUser(t, "jane", "Password!1", model.RoleAdmin)
	repo.On("FindByUsername", mock.Anything, "jane").Return(user, nil)

	svc := NewAuthService(repo, testJWTService())

	got, pair, err := svc.Login(context.Background(), "jane", "Password!1")
	assert.NoError(t, err)
	assert.Equal(t, user, got)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "bearer", pair.TokenType)

	// The access token decodes back to the right subject and role.
	claims, err := testJWTService().ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "jane", claims.Subject)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	repo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	user := storedUser(t, "jane", "Password!1", model.RoleAdmin)
	repo.On("FindByUsername", mock.Anything, "jane").Return(user, nil)

	svc := NewAuthService(repo, testJWTService())

	_, _, err := svc.Login(context.Background(), "jane", "WrongPass!1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(repo, testJWTService())

	_, _, err := svc.Login(context.Background(), "ghost", "Password!1")
	// Unknown user and wrong password collapse into the same error.
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshRotatesPair(t *testing.T) {
	repo := new(MockUserRepository)
	user := storedUser(t, "jane", "Password!1", model.RoleEmployee)
	repo.On("FindByUsername", mock.Anything, "jane").Return(user, nil)

	jwtSvc := testJWTService()
	svc := NewAuthService(repo, jwtSvc)

	_, pair, err := svc.Login(context.Background(), "jane", "Password!1")
	assert.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)

	claims, err := jwtSvc.ValidateToken(rotated.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "jane", claims.Subject)
	assert.Equal(t, model.RoleEmployee, claims.Role)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := new(MockUserRepository)
	jwtSvc := testJWTService()
	svc := NewAuthService(repo, jwtSvc)

	accessToken, err := jwtSvc.GenerateAccessToken("jane", model.RoleAdmin)
	assert.NoError(t, err)

	_, err = svc.Refresh(context.Background(), accessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), testJWTService())

	_, err := svc.Refresh(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshRejectsDeletedUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByUsername", mock.Anything, "jane").Return(nil, gorm.ErrRecordNotFound)

	jwtSvc := testJWTService()
	svc := NewAuthService(repo, jwtSvc)

	refreshToken, err := jwtSvc.GenerateRefreshToken("jane")
	assert.NoError(t, err)

	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}
