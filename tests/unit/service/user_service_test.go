package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"medstore/internal/domain"
	"medstore/internal/service"
	"medstore/mocks"
)

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Username: "counter1",
		Password: "s3cret-pass",
		Name:     "Counter Staff",
		Role:     domain.RoleStaff,
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
	assert.True(t, user.IsActive)
}

func TestUserService_Create_RejectsUnknownRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Username: "counter1",
		Password: "s3cret-pass",
		Name:     "Counter Staff",
		Role:     domain.UserRole("owner"),
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrInsufficientRole)
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(domain.ErrDuplicateUsername)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Username: "counter1",
		Password: "s3cret-pass",
		Name:     "Counter Staff",
		Role:     domain.RoleStaff,
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}
