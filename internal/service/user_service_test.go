package service

import (
	"context"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"garage/internal/auth"
	apperrors "garage/internal/errors"
	"garage/internal/model"
	"garage/internal/validation"
)

func TestUserCreateHashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Username == "jane" &&
			u.Role == model.RoleAdmin &&
			u.PasswordHash != "Password!1" &&
			auth.CheckPassword("Password!1", u.PasswordHash)
	})).Return(nil)

	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), &validation.UserCreate{
		Username: "jane",
		Password: "Password!1",
		Role:     model.RoleAdmin,
	})
	assert.NoError(t, err)
	assert.Equal(t, "jane", user.Username)
	repo.AssertExpectations(t)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})

	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), &validation.UserCreate{
		Username: "jane",
		Password: "Password!1",
		Role:     model.RoleEmployee,
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestUserGetNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(repo)

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserUpdatePartialFields(t *testing.T) {
	repo := new(MockUserRepository)
	existing := &model.User{ID: 1, Username: "jane", PasswordHash: "old-hash", Role: model.RoleEmployee}
	repo.On("FindByID", mock.Anything, uint(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// Only the role changed; username and hash are untouched.
		return u.Username == "jane" && u.PasswordHash == "old-hash" && u.Role == model.RoleAdmin
	})).Return(nil)

	svc := NewUserService(repo)

	role := model.RoleAdmin
	updated, err := svc.Update(context.Background(), 1, &validation.UserUpdate{Role: &role})
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)
	repo.AssertExpectations(t)
}

func TestUserDeleteNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(repo)

	err := svc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
