package controller

import (
	"net/http"

	"calendar-api/core/controller"
	"calendar-api/core/errors"
	"calendar-api/core/logger"
	"calendar-api/core/utils"
	"calendar-api/modules/auth/dto"
	"calendar-api/modules/auth/service"
	"calendar-api/modules/auth/validator"

	"github.com/labstack/echo/v4"
)

// AuthController handles authentication HTTP requests
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(authService service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authService,
	}
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Description Create a user with name, email, password and birthdate
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 200 {object} dto.RegisterResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /auth/register [post]
func (c *AuthController) Register(ctx echo.Context) error {
	requestData := new(dto.RegisterRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateRegisterRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	registerResponse, appErr := c.AuthService.Register(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, registerResponse, "Register success")
}

// Login handles POST /auth/login
// @Summary Login with email and password
// @Description Authenticate and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} errors.AppError
// @Router /auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	requestData := new(dto.LoginRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateLoginRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	loginResponse, appErr := c.AuthService.Login(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, loginResponse, "Login success")
}

// Logout handles POST /private/auth/logout
// @Summary Logout
// @Description Revoke the presented bearer token
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} controller.SuccessResponse
// @Failure 401 {object} errors.AppError
// @Router /private/auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	token, err := utils.GetTokenFromHeader(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	if appErr := c.AuthService.Logout(ctx.Request().Context(), token); appErr != nil {
		logger.Error("AuthController:Logout", appErr)
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Logout success")
}

// GoogleLogin handles GET /auth/google/login
// @Summary Start Google OAuth login
// @Tags Auth
// @Success 307
// @Router /auth/google/login [get]
func (c *AuthController) GoogleLogin(ctx echo.Context) error {
	state := utils.GenerateID()
	url, appErr := c.AuthService.GoogleAuthURL(state)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return ctx.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback handles GET /auth/google/callback
// @Summary Complete Google OAuth login
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} errors.AppError
// @Router /auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx echo.Context) error {
	code := ctx.QueryParam("code")
	if code == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Missing authorization code", nil)
	}

	loginResponse, appErr := c.AuthService.LoginWithGoogle(ctx.Request().Context(), code)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, loginResponse, "Login success")
}
