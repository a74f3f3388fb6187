package usecases

import (
	"context"

	"crest/internal/domain/user"
	"crest/internal/shared/errors"
	"crest/internal/shared/logger"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, role string) (string, error)
}

// LoginCommand represents the credentials presented at login.
type LoginCommand struct {
	Email    string
	Password string
}

// LoginResult carries the signed access token and the user's profile bits
// the client needs immediately.
type LoginResult struct {
	Token       string
	UserID      uint
	DisplayName string
	Role        string
}

// LoginExecutor defines the interface for authenticating a user.
type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

// LoginUseCase handles password authentication. Deactivated accounts are
// rejected; suspension does not block login, only write actions.
type LoginUseCase struct {
	userRepo user.Repository
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, issuer TokenIssuer, log logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !u.VerifyPassword(cmd.Password) {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !u.Active() {
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	token, err := uc.issuer.Issue(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())
	return &LoginResult{
		Token:       token,
		UserID:      u.ID(),
		DisplayName: u.DisplayName(),
		Role:        u.Role(),
	}, nil
}
