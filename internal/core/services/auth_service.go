package services

import (
	"context"
	"fmt"
	"time"

	portssvc "github.com/jefremassingue/sales-plat-backend/internal/core/ports/services"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
	"github.com/jefremassingue/sales-plat-backend/internal/platform/config"
	"github.com/jefremassingue/sales-plat-backend/internal/utils"
)

// authService issues signed access tokens for authenticated users. It needs
// the application configuration for the signing secret and expiry, and the
// user service for credential verification.
type authService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:         cfg,
		userService: userService,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and returns a signed access token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userService.AuthenticateUser(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(user),
	}, nil
}
