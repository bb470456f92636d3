package middleware

import (
	"context"

	"calendar-api/core/constants"
	"calendar-api/core/controller"
	"calendar-api/core/errors"
	"calendar-api/core/logger"
	"calendar-api/core/utils"

	"github.com/labstack/echo/v4"
)

// TokenChecker is the slice of the auth service the middleware needs
type TokenChecker interface {
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}

type Middleware struct {
	tokens TokenChecker
}

func NewMiddleware(tokens TokenChecker) *Middleware {
	return &Middleware{tokens: tokens}
}

// AuthMiddleware validates the bearer token and stores the claims in context
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "missing or malformed authorization header")
			}

			blacklisted, err := m.tokens.IsTokenBlacklisted(c.Request().Context(), token)
			if err != nil {
				logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted", err)
				return controller.NewErrorResponse(500, errors.ErrInternalServer, "failed to verify token")
			}
			if blacklisted {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "token has been revoked")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "invalid or expired token")
			}
			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "token scope not allowed")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
