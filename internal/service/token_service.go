package service

import (
	"context"
	"fmt"

	"github.com/dtroode/gophtodo-server/internal/logger"
	"github.com/dtroode/gophtodo-server/internal/model"
)

// TokenService issues and verifies bearer tokens. Verification is stateless:
// there is no session store and tokens are never revoked.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(_ context.Context, accountID string) (string, error) {
	token, err := s.manager.GenerateAccessToken(accountID)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}
	return token, nil
}

func (s *TokenService) GetAccountID(_ context.Context, token string) (string, error) {
	accountID, err := s.manager.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Token service: token verification failed",
			"error", err.Error())
		return "", err
	}
	return accountID, nil
}
