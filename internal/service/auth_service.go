package service

import (
	"strings"
	"time"

	"github.com/plantnet/marketplace/internal/auth"
	"github.com/plantnet/marketplace/internal/config"
	apperrors "github.com/plantnet/marketplace/pkg/util"
)

// AuthService issues credentials for an asserted identity.
type AuthService struct {
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())}
}

// IssueToken signs a credential for email.
func (s *AuthService) IssueToken(email string) (string, time.Time, error) {
	if strings.TrimSpace(email) == "" {
		return "", time.Time{}, apperrors.NewValidationError("email required", nil)
	}
	return s.tokenMgr.GenerateToken(email)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
