package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/gophtodo-server/internal/apierrors"
	"github.com/dtroode/gophtodo-server/internal/logger"
	"github.com/dtroode/gophtodo-server/internal/model"
)

// AuthService defines account registration, login and update operations.
type AuthService interface {
	Register(ctx context.Context, creds model.Credentials) error
	Login(ctx context.Context, creds model.Credentials) (string, error)
	UpdateAccount(ctx context.Context, accountID string, update model.AccountUpdate) error
}

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateAccountRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Auth handles HTTP endpoints for accounts.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account from username, email and password.
func (h *Auth) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierrors.NewErrInvalidUserDetails(), "")
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"username", req.Username)

	err := h.authService.Register(c.Request.Context(), model.Credentials{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logFailure(h.logger, "Auth handler: registration failed", err,
			"username", req.Username)
		handleError(c, err, "Failed to register user")
		return
	}

	h.logger.Info("Auth handler: registration completed",
		"username", req.Username)

	c.JSON(http.StatusCreated, messageResponse{Message: "User Registered Successfully"})
}

// Login exchanges username and password for a bearer token.
func (h *Auth) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierrors.NewErrInvalidUserDetails(), "")
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"username", req.Username)

	token, err := h.authService.Login(c.Request.Context(), model.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		logFailure(h.logger, "Auth handler: login failed", err,
			"username", req.Username)
		handleError(c, err, "Failed to login")
		return
	}

	h.logger.Info("Auth handler: login completed",
		"username", req.Username)

	c.JSON(http.StatusCreated, loginResponse{Token: token})
}

// UpdateAccount overwrites any of username, email and password of the caller.
func (h *Auth) UpdateAccount(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.contextManager.GetAccountIDFromContext(ctx)
	if !ok {
		handleError(c, apierrors.NewErrInvalidToken(nil), "")
		return
	}

	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		handleError(c, apierrors.NewErrInvalidBody(err), "")
		return
	}

	h.logger.Debug("Auth handler: processing account update request",
		"account_id", accountID)

	err := h.authService.UpdateAccount(ctx, accountID, model.AccountUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logFailure(h.logger, "Auth handler: account update failed", err,
			"account_id", accountID)
		handleError(c, err, "Failed to update user data")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "User updated successfully"})
}
