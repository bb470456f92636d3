package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"calendar-api/core/config"
	"calendar-api/core/constants"
	"calendar-api/core/errors"
	"calendar-api/core/logger"
	"calendar-api/core/utils"
	"calendar-api/modules/auth/dto"
	"calendar-api/modules/auth/entity"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func googleOAuthConfig() (*oauth2.Config, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok || cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "google oauth is not configured", nil)
	}

	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}, nil
}

// GoogleAuthURL builds the consent page redirect for the given state
func (s *AuthService) GoogleAuthURL(state string) (string, *errors.AppError) {
	oauthCfg, appErr := googleOAuthConfig()
	if appErr != nil {
		return "", appErr
	}
	return oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// LoginWithGoogle exchanges the callback code, finds or creates the matching
// account and issues the same access token credential login produces
func (s *AuthService) LoginWithGoogle(ctx context.Context, code string) (*dto.LoginResponse, *errors.AppError) {
	oauthCfg, appErr := googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	token, err := oauthCfg.Exchange(exchangeCtx, code)
	if err != nil {
		logger.Error("AuthService:LoginWithGoogle:Exchange", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "failed to exchange authorization code", err)
	}

	info, err := fetchGoogleUserInfo(exchangeCtx, oauthCfg, token)
	if err != nil {
		logger.Error("AuthService:LoginWithGoogle:FetchUserInfo", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to fetch google profile", err)
	}
	if info.Email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "google profile has no email", nil)
	}

	user, err := s.repo.GetUserByEmail(ctx, info.Email)
	if err != nil {
		logger.Error("AuthService:LoginWithGoogle:GetUserByEmail", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}

	if user == nil {
		// First google login creates a local account with an unusable password
		randomPassword, hashErr := utils.HashPassword(utils.GenerateID() + utils.GenerateID())
		if hashErr != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to provision account", hashErr)
		}

		user, err = s.repo.CreateUser(ctx, &entity.User{
			Name:      info.Name,
			Email:     info.Email,
			Birthdate: time.Time{},
			Password:  randomPassword,
		})
		if err != nil {
			logger.Error("AuthService:LoginWithGoogle:CreateUser", err)
			return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create user", err)
		}
		logger.Info("AuthService:LoginWithGoogle:UserProvisioned", "user_id", user.ID.String())
	}

	accessToken, err := utils.GenerateToken(user.ID, user.Email, user.Name, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:LoginWithGoogle:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate token", err)
	}

	return &dto.LoginResponse{Token: accessToken, Name: user.Name}, nil
}

func fetchGoogleUserInfo(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*googleUserInfo, error) {
	client := cfg.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.Warn("AuthService:FetchGoogleUserInfo:BadStatus", "status", resp.StatusCode, "body", string(body))
		return nil, errors.NewAppError(errors.ErrUnauthorized, "google userinfo request rejected", nil)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
