package utils

import (
	"fmt"
	"strings"
	"time"

	"calendar-api/core/config"
	"calendar-api/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TokenClaims are the JWT claims carried by every issued token
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Scope  string    `json:"scope"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed JWT for the given user and scope
func GenerateToken(userID uuid.UUID, email string, name string, scope string) (string, error) {
	cfg := config.Get()

	claims := &TokenClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Scope:  scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.JWT.ExpireMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateAndParseToken verifies the signature and expiry and returns the claims
func ValidateAndParseToken(tokenString string) (*TokenClaims, error) {
	cfg := config.Get()

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// GetTokenFromHeader extracts the bearer token from the Authorization header
func GetTokenFromHeader(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", errors.NewAppError(errors.ErrMissingAuthorizationHeader, "missing authorization header", nil)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid authorization header format", nil)
	}

	return parts[1], nil
}
