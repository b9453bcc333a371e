package service

import (
	"context"
	"testing"
	"time"

	"chatbot-platform-be/internal/dto"
	"chatbot-platform-be/internal/pkg/apperror"
	"chatbot-platform-be/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture() (IAuthService, *fakeUow) {
	uow := &fakeUow{}
	tm := token.NewManager("test-secret", time.Hour)
	return NewAuthService(&fakeFactory{uow: uow}, tm, nil), uow
}

func TestRegisterCreatesUserAndIssuesToken(t *testing.T) {
	svc, uow := newAuthFixture()

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)

	require.Len(t, uow.users, 1)
	assert.Equal(t, "alice@example.com", uow.users[0].Email)
	assert.Equal(t, "Alice", uow.users[0].Name)
	// The stored hash must verify and never equal the raw password.
	assert.NotEqual(t, "secret123", uow.users[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(uow.users[0].PasswordHash), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	req := &dto.RegisterRequest{Email: "alice@example.com", Password: "secret123", Name: "Alice"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestMeReturnsStoredUser(t *testing.T) {
	svc, uow := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	require.NoError(t, err)

	res, err := svc.Me(context.Background(), uow.users[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", res.Email)
}
