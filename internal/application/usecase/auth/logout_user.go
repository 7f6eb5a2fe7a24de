// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	Claims *adapter.TokenClaims
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase revokes the token the request was authenticated with.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the user logout.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	if input.Claims == nil {
		return nil, fmt.Errorf("logout requires authenticated token claims")
	}

	if err := uc.tokenService.RevokeToken(ctx, input.Claims); err != nil {
		return nil, fmt.Errorf("failed to revoke token: %w", err)
	}

	return &LogoutUserOutput{
		Message: "Logged out successfully",
	}, nil
}
