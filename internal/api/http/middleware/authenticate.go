package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/gophtodo-server/internal/apierrors"
	"github.com/dtroode/gophtodo-server/internal/logger"
	"github.com/dtroode/gophtodo-server/internal/model"
)

// TokenService resolves account ID from bearer tokens.
type TokenService interface {
	GetAccountID(ctx context.Context, token string) (string, error)
}

// Authenticate validates bearer tokens and injects account ID into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header and rejects the request with 401
// unless it carries a valid token.
func (m *Authenticate) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, err := m.authenticateAccount(ctx, bearerToken(c.GetHeader("Authorization")))
	if err != nil {
		m.logger.Debug("Authenticate middleware: request rejected",
			"path", c.FullPath(),
			"error", err.Error())
		c.AbortWithStatusJSON(err.Status, err.Body())
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetAccountIDToContext(ctx, accountID))
	c.Next()
}

func (m *Authenticate) authenticateAccount(ctx context.Context, token string) (string, *apierrors.APIError) {
	if token == "" {
		return "", apierrors.NewErrInvalidToken(nil)
	}

	accountID, err := m.tokenService.GetAccountID(ctx, token)
	if err != nil {
		return "", apierrors.NewErrInvalidToken(err)
	}

	if accountID == "" {
		return "", apierrors.NewErrInvalidToken(nil)
	}

	return accountID, nil
}

// bearerToken returns the second space-separated part of the header value.
func bearerToken(header string) string {
	_, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}
