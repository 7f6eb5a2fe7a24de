// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

const (
	internalErrorMessage = "An internal error occurred"
	invalidBodyMessage   = "Invalid request body"
	bodyTooLargeMessage  = "Request body too large"
	categoryNotFoundText = "Category not found"
	expenseNotFoundText  = "Expense not found"
)

// handleError writes the HTTP response for an error returned by a use case.
func handleError(ctx *gin.Context, err error) {
	var (
		valErr  *domainerror.ValidationError
		authErr *domainerror.AuthError
		catErr  *domainerror.CategoryError
		expErr  *domainerror.ExpenseError
	)

	switch {
	case errors.As(err, &valErr):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Message: valErr.Error(),
			Code:    domainerror.ErrCodeValidation,
			Errors:  valErr.Fields,
		})
	case errors.As(err, &authErr):
		ctx.JSON(getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Message: authErr.Message,
			Code:    string(authErr.Code),
		})
	case errors.As(err, &catErr):
		ctx.JSON(getStatusCodeForCategoryError(catErr.Code), dto.ErrorResponse{
			Message: catErr.Message,
			Code:    string(catErr.Code),
		})
	case errors.As(err, &expErr):
		ctx.JSON(getStatusCodeForExpenseError(expErr.Code), dto.ErrorResponse{
			Message: expErr.Message,
			Code:    string(expErr.Code),
		})
	default:
		slog.ErrorContext(ctx.Request.Context(), "Request failed",
			"error", err,
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: internalErrorMessage,
		})
	}
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeRevokedToken,
		domainerror.ErrCodeUnknownUser:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedCategory:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedExpense, domainerror.ErrCodeInvalidCategory:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// readBody decodes the JSON request body. It writes a 400 and returns false when
// the body is not a JSON object or is larger than dto.MaxBodyBytes.
func readBody(ctx *gin.Context) (*dto.Body, bool) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, dto.MaxBodyBytes)
	body, err := dto.DecodeBody(ctx.Request.Body)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrMalformedBody):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: invalidBodyMessage})
		case errors.Is(err, dto.ErrBodyTooLarge):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: bodyTooLargeMessage})
		default:
			handleError(ctx, err)
		}
		return nil, false
	}
	return body, true
}

// requireUserID returns the authenticated user id or writes a 401.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Message: middleware.UnauthenticatedMessage,
			Code:    string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// categoryIDParam parses the :id path parameter. A malformed id cannot name any
// category, so it answers 404.
func categoryIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Message: categoryNotFoundText,
			Code:    string(domainerror.ErrCodeCategoryNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

// expenseIDParam parses the :id path parameter, answering 404 when malformed.
func expenseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Message: expenseNotFoundText,
			Code:    string(domainerror.ErrCodeExpenseNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

// stringValue returns the string held by an optional body field, or "".
func stringValue(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
