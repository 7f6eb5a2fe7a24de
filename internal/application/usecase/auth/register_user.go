// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// TokenTypeBearer is the token_type reported alongside every issued token.
const TokenTypeBearer = "Bearer"

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	clock           adapter.Clock
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	clock adapter.Clock,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		clock:           clock,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	input.Email = normalizeEmail(input.Email)

	verr := uc.validate(input)
	if !verr.Has("email") {
		exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email existence: %w", err)
		}
		if exists {
			verr.Add("email", "The email has already been taken.")
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Name, input.Email, passwordHash, uc.clock.Now())

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Lost a race against a concurrent registration with the same email.
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			taken := domainerror.NewValidationError()
			taken.Add("email", "The email has already been taken.")
			return nil, taken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokenService.IssueToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &RegisterUserOutput{
		AccessToken: token.AccessToken,
		TokenType:   TokenTypeBearer,
		User:        user,
	}, nil
}

func (uc *RegisterUserUseCase) validate(input RegisterUserInput) *domainerror.ValidationError {
	v := domainerror.NewValidationError()

	if requireString(v, "name", input.Name) {
		maxLength(v, "name", input.Name, MaxNameLength)
	}

	if requireString(v, "email", input.Email) {
		if !isValidEmail(input.Email) {
			v.Add("email", "The email field must be a valid email address.")
		}
		maxLength(v, "email", input.Email, MaxEmailLength)
	}

	if input.Password == "" {
		v.Add("password", "The password field is required.")
	} else {
		if minLen := uc.passwordService.MinPasswordLength(); len([]rune(input.Password)) < minLen {
			v.Add("password", fmt.Sprintf("The password field must be at least %d characters.", minLen))
		}
		if len(input.Password) > MaxPasswordBytes {
			v.Add("password", fmt.Sprintf("The password field must not be greater than %d characters.", MaxPasswordBytes))
		}
		if input.Password != input.PasswordConfirmation {
			v.Add("password", "The password field confirmation does not match.")
		}
	}

	return v
}
