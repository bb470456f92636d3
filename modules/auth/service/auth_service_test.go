package service

import (
	"context"
	"testing"
	"time"

	"calendar-api/core/config"
	"calendar-api/core/errors"
	"calendar-api/core/utils"
	"calendar-api/modules/auth/dto"
	"calendar-api/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthRepo struct {
	byEmail map[string]*entity.User
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeAuthRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := f.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAuthRepo) GetUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAuthRepo) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	copied := *user
	copied.ID = uuid.New()
	f.byEmail[copied.Email] = &copied
	out := copied
	return &out, nil
}

type fakeCache struct {
	blacklist map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{blacklist: make(map[string]bool)}
}

func (f *fakeCache) AddToTokenBlacklist(_ context.Context, token string, _ time.Duration) error {
	f.blacklist[token] = true
	return nil
}

func (f *fakeCache) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	return f.blacklist[token], nil
}

func (f *fakeCache) Close() error { return nil }

func newTestService(t *testing.T) (AuthServiceInterface, *fakeAuthRepo, *fakeCache) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := config.Load()
	require.NoError(t, err)

	repo := newFakeAuthRepo()
	cache := newFakeCache()
	return NewAuthService(repo, cache), repo, cache
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
		Birthdate: "1994-05-14",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, appErr := svc.Register(context.Background(), registerRequest())
	require.Nil(t, appErr)
	assert.NotEmpty(t, created.UserID)

	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "Jane Doe", resp.Name)

	claims, err := utils.ValidateAndParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, created.UserID, claims.UserID.String())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, appErr := svc.Register(context.Background(), registerRequest())
	require.Nil(t, appErr)

	_, appErr = svc.Register(context.Background(), registerRequest())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, appErr := svc.Register(context.Background(), registerRequest())
	require.Nil(t, appErr)

	stored := repo.byEmail["jane@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, utils.ComparePassword(stored.Password, "secret123"))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, appErr := svc.Register(context.Background(), registerRequest())
	require.Nil(t, appErr)

	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	svc, _, cache := newTestService(t)
	_, appErr := svc.Register(context.Background(), registerRequest())
	require.Nil(t, appErr)

	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.Nil(t, appErr)

	logoutErr := svc.Logout(context.Background(), resp.Token)
	require.Nil(t, logoutErr)

	assert.True(t, cache.blacklist[resp.Token])

	blacklisted, err := svc.IsTokenBlacklisted(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}
