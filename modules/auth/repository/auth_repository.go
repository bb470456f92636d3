package repository

import (
	"context"
	"database/sql"

	"calendar-api/core/database"
	"calendar-api/core/logger"
	"calendar-api/modules/auth/entity"

	"github.com/google/uuid"
)

// AuthRepository handles user table access
type AuthRepository struct {
	DB database.Database
}

func NewAuthRepository(db database.Database) *AuthRepository {
	return &AuthRepository{DB: db}
}

// AuthRepositoryInterface defines the repository contract
type AuthRepositoryInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
}

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, birthdate, password, created_at, updated_at
		FROM users WHERE email = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByEmail", err)
		return nil, err
	}

	return &user, nil
}

func (r *AuthRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, birthdate, password, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByID", err)
		return nil, err
	}

	return &user, nil
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (name, email, birthdate, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, birthdate, password, created_at, updated_at
	`

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query,
		user.Name, user.Email, user.Birthdate, user.Password)
	if err != nil {
		logger.Error("AuthRepository:CreateUser", err)
		return nil, err
	}

	return &created, nil
}
