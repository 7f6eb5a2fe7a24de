// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// TokenClaimsKey is the context key for the validated token claims.
	TokenClaimsKey ContextKey = "token_claims"

	// UnauthenticatedMessage is the body message of every 401 response.
	UnauthenticatedMessage = "Unauthenticated."
)

// AuthMiddleware provides bearer token authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces bearer token authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, domainerror.ErrCodeMissingToken)
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			abortUnauthenticated(c, domainerror.ErrCodeInvalidToken)
			return
		}

		token = strings.TrimSpace(token)
		if token == "" {
			abortUnauthenticated(c, domainerror.ErrCodeMissingToken)
			return
		}

		claims, err := m.tokenService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domainerror.ErrExpiredToken):
				abortUnauthenticated(c, domainerror.ErrCodeExpiredToken)
			case errors.Is(err, domainerror.ErrRevokedToken):
				abortUnauthenticated(c, domainerror.ErrCodeRevokedToken)
			case errors.Is(err, domainerror.ErrInvalidToken):
				abortUnauthenticated(c, domainerror.ErrCodeInvalidToken)
			default:
				slog.ErrorContext(c.Request.Context(), "Token validation failed", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Message: "An internal error occurred",
				})
			}
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(TokenClaimsKey), claims)

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, code domainerror.AuthErrorCode) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Message: UnauthenticatedMessage,
		Code:    string(code),
	})
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetTokenClaimsFromContext extracts the validated token claims from the Gin context.
func GetTokenClaimsFromContext(c *gin.Context) (*adapter.TokenClaims, bool) {
	claims, exists := c.Get(string(TokenClaimsKey))
	if !exists {
		return nil, false
	}
	tc, ok := claims.(*adapter.TokenClaims)
	return tc, ok
}
