package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/gophtodo-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) ([]model.Account, error) {
	query := `SELECT id, username, email, password_hash FROM accounts WHERE email = $1`

	accounts, err := r.findBy(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts by email: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) ([]model.Account, error) {
	query := `SELECT id, username, email, password_hash FROM accounts WHERE username = $1`

	accounts, err := r.findBy(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts by username: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) findBy(ctx context.Context, query string, value string) ([]model.Account, error) {
	rows, err := r.db.Query(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		var (
			id      uuid.UUID
			account model.Account
		)
		if err := rows.Scan(&id, &account.Username, &account.Email, &account.PasswordHash); err != nil {
			return nil, err
		}
		account.ID = id.String()
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (model.Account, error) {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return model.Account{}, model.ErrNotFound
	}

	query := `SELECT username, email, password_hash FROM accounts WHERE id = $1`

	account := model.Account{ID: accountID.String()}
	err = r.db.QueryRow(ctx, query, accountID).Scan(&account.Username, &account.Email, &account.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (string, error) {
	query := `INSERT INTO accounts (username, email, password_hash)
			  VALUES ($1, $2, $3)
			  RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, account.Username, account.Email, account.PasswordHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return "", model.ErrAlreadyExists
		}
		return "", fmt.Errorf("failed to create account: %w", err)
	}

	return id.String(), nil
}

func (r *AccountRepository) Update(ctx context.Context, id string, patch model.AccountPatch) (int64, error) {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return 0, nil
	}

	query := `UPDATE accounts
			  SET username = COALESCE($2::text, username),
			      email = COALESCE($3::text, email),
			      password_hash = COALESCE($4::text, password_hash),
			      updated_at = now()
			  WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, accountID, patch.Username, patch.Email, patch.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, model.ErrAlreadyExists
		}
		return 0, fmt.Errorf("failed to update account: %w", err)
	}

	return tag.RowsAffected(), nil
}
