package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles registration, login, logout and current user endpoints.
type AuthController struct {
	registerUseCase    *auth.RegisterUserUseCase
	loginUseCase       *auth.LoginUserUseCase
	logoutUseCase      *auth.LogoutUserUseCase
	currentUserUseCase *auth.GetCurrentUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	logoutUseCase *auth.LogoutUserUseCase,
	currentUserUseCase *auth.GetCurrentUserUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase:    registerUseCase,
		loginUseCase:       loginUseCase,
		logoutUseCase:      logoutUseCase,
		currentUserUseCase: currentUserUseCase,
	}
}

// Register handles POST /register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	body, ok := readBody(ctx)
	if !ok {
		return
	}

	input := auth.RegisterUserInput{
		Name:                 stringValue(body.String("name").Ptr()),
		Email:                stringValue(body.String("email").Ptr()),
		Password:             stringValue(body.String("password").Ptr()),
		PasswordConfirmation: stringValue(body.String("password_confirmation").Ptr()),
	}
	if err := body.Err(); err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAuthResponse(output.AccessToken, output.TokenType, output.User))
}

// Login handles POST /login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	body, ok := readBody(ctx)
	if !ok {
		return
	}

	input := auth.LoginUserInput{
		Email:    stringValue(body.String("email").Ptr()),
		Password: stringValue(body.String("password").Ptr()),
	}
	if err := body.Err(); err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuthResponse(output.AccessToken, output.TokenType, output.User))
}

// Logout handles POST /logout requests. It revokes the token used for the request.
func (c *AuthController) Logout(ctx *gin.Context) {
	claims, ok := middleware.GetTokenClaimsFromContext(ctx)
	if !ok {
		requireUserID(ctx)
		return
	}

	output, err := c.logoutUseCase.Execute(ctx.Request.Context(), auth.LogoutUserInput{Claims: claims})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// Me handles GET /me and GET /user requests.
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.currentUserUseCase.Execute(ctx.Request.Context(), auth.GetCurrentUserInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
