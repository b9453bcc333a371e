package service

import (
	"context"
	"fmt"
	"time"

	"chatbot-platform-be/internal/dto"
	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/pkg/apperror"
	"chatbot-platform-be/internal/pkg/token"
	"chatbot-platform-be/internal/repository/specification"
	"chatbot-platform-be/internal/repository/unitofwork"
	"chatbot-platform-be/pkg/events"
	pkgNats "chatbot-platform-be/pkg/nats"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	tokenManager   *token.Manager
	eventPublisher *pkgNats.Publisher
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	tokenManager *token.Manager,
	eventPublisher *pkgNats.Publisher,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		tokenManager:   tokenManager,
		eventPublisher: eventPublisher,
	}
}

// Register creates the account and immediately issues a token, so the
// client can skip a separate login call.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.New(apperror.ErrConflict, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewUserRegisteredEvent(user.Id.String(), user.Email)); err != nil {
		fmt.Printf("[WARN] Failed to publish USER_REGISTERED event: %v\n", err)
	}

	accessToken, err := s.tokenManager.Issue(user.Id, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	// An unknown email and a wrong password are reported identically.
	if user == nil {
		return nil, apperror.New(apperror.ErrUnauthorized, "Incorrect email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.New(apperror.ErrUnauthorized, "Incorrect email or password")
	}

	accessToken, err := s.tokenManager.Issue(user.Id, user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewUserLoginEvent(user.Id.String(), user.Email)); err != nil {
		fmt.Printf("[WARN] Failed to publish USER_LOGIN event: %v\n", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.New(apperror.ErrUnauthorized, "Could not validate credentials")
	}

	return &dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}, nil
}
