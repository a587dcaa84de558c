package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/gophtodo-server/internal/apierrors"
	"github.com/dtroode/gophtodo-server/internal/logger"
	"github.com/dtroode/gophtodo-server/internal/model"
)

type Auth struct {
	accountStore model.AccountStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	accountStore model.AccountStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		accountStore: accountStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates an account. The email uniqueness check runs before the
// input shape check, so a taken email is reported even when other fields are missing.
func (a *Auth) Register(ctx context.Context, creds model.Credentials) error {
	a.logger.Debug("Auth service: starting registration",
		"username", creds.Username,
		"email", creds.Email)

	existing, err := a.accountStore.FindByEmail(ctx, creds.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to find account by email",
			"email", creds.Email,
			"error", err.Error())
		return fmt.Errorf("failed to find account by email: %w", err)
	}

	if len(existing) > 0 {
		a.logger.Info("Auth service: account already exists",
			"email", creds.Email)
		return apierrors.NewErrUserAlreadyExists()
	}

	if creds.Username == "" || creds.Email == "" || creds.Password == "" {
		return apierrors.NewErrInvalidUserDetails()
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := a.accountStore.Create(ctx, model.Account{
		Username:     creds.Username,
		Email:        creds.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Auth service: account already exists",
			"username", creds.Username,
			"email", creds.Email)
		return apierrors.NewErrUserAlreadyExists()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create account",
			"username", creds.Username,
			"error", err.Error())
		return fmt.Errorf("failed to create account: %w", err)
	}

	a.logger.Info("Auth service: registration completed successfully",
		"account_id", id,
		"username", creds.Username)

	return nil
}

// Login verifies the password of the single account with the given username
// and returns a signed bearer token for it.
func (a *Auth) Login(ctx context.Context, creds model.Credentials) (string, error) {
	a.logger.Debug("Auth service: starting login",
		"username", creds.Username)

	if creds.Username == "" || creds.Password == "" {
		return "", apierrors.NewErrInvalidUserDetails()
	}

	accounts, err := a.accountStore.FindByUsername(ctx, creds.Username)
	if err != nil {
		return "", fmt.Errorf("failed to find account by username: %w", err)
	}

	if len(accounts) != 1 {
		a.logger.Info("Auth service: no single account for username",
			"username", creds.Username,
			"matches", len(accounts))
		return "", apierrors.NewErrUserDoesNotExist()
	}
	account := accounts[0]

	ok, err := a.hasher.Compare(account.PasswordHash, creds.Password)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: incorrect password",
			"account_id", account.ID)
		return "", apierrors.NewErrIncorrectPassword()
	}

	token, err := a.tokenService.Issue(ctx, account.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"account_id", account.ID)

	return token, nil
}

// UpdateAccount overwrites the supplied fields of the caller's account.
// Empty strings count as not supplied.
func (a *Auth) UpdateAccount(ctx context.Context, accountID string, update model.AccountUpdate) error {
	a.logger.Debug("Auth service: starting account update",
		"account_id", accountID)

	patch := model.AccountPatch{
		Username: nonEmpty(update.Username),
		Email:    nonEmpty(update.Email),
	}

	if password := nonEmpty(update.Password); password != nil {
		hash, err := a.hasher.Hash(*password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	if patch.IsEmpty() {
		return apierrors.NewErrNoFieldsToUpdate()
	}

	matched, err := a.accountStore.Update(ctx, accountID, patch)
	if errors.Is(err, model.ErrAlreadyExists) {
		return apierrors.NewErrUserDetailsTaken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to update account",
			"account_id", accountID,
			"error", err.Error())
		return fmt.Errorf("failed to update account: %w", err)
	}

	if matched == 0 {
		return apierrors.NewErrUserNotFound()
	}

	a.logger.Info("Auth service: account updated successfully",
		"account_id", accountID)

	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
