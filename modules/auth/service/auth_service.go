package service

import (
	"context"
	"time"

	"calendar-api/core/cache"
	"calendar-api/core/constants"
	"calendar-api/core/errors"
	"calendar-api/core/logger"
	"calendar-api/core/utils"
	"calendar-api/modules/auth/dto"
	"calendar-api/modules/auth/entity"
	"calendar-api/modules/auth/repository"
)

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.Cache
}

// AuthServiceInterface defines the service contract
type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	LoginWithGoogle(ctx context.Context, code string) (*dto.LoginResponse, *errors.AppError)
	GoogleAuthURL(state string) (string, *errors.AppError)
}

func NewAuthService(repo repository.AuthRepositoryInterface, cache cache.Cache) AuthServiceInterface {
	return &AuthService{
		repo:  repo,
		cache: cache,
	}
}

// Register creates a new account with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, *errors.AppError) {
	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Register:GetUserByEmail", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "user with this email already exists", nil)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	// Validator guarantees the layout
	birthdate, _ := time.Parse("2006-01-02", req.Birthdate)

	user := &entity.User{
		Name:      req.Name,
		Email:     req.Email,
		Birthdate: birthdate,
		Password:  hashedPassword,
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		logger.Error("AuthService:Register:CreateUser", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create user", err)
	}

	logger.Info("AuthService:Register:UserCreated", "user_id", created.ID.String())
	return &dto.RegisterResponse{UserID: created.ID.String()}, nil
}

// Login checks credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:GetUserByEmail", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	if !utils.ComparePassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate token", err)
	}

	return &dto.LoginResponse{
		Token: token,
		Name:  user.Name,
	}, nil
}

// Logout blacklists the presented token until its natural expiry
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "invalid token", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.cache.AddToTokenBlacklist(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}

	return nil
}

// IsTokenBlacklisted is consumed by the auth middleware
func (s *AuthService) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return s.cache.IsTokenBlacklisted(ctx, token)
}
