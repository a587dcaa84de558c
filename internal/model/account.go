package model

import "context"

// AccountStore defines persistence operations for accounts.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) ([]Account, error)
	FindByUsername(ctx context.Context, username string) ([]Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	Create(ctx context.Context, account Account) (string, error)
	Update(ctx context.Context, id string, patch AccountPatch) (int64, error)
}

// Account represents a registered user. ID is generated by the store.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
}

// Credentials carries the fields submitted on registration and login.
// An empty field is treated as not supplied.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// AccountUpdate is a caller-submitted partial account change with a plaintext password.
type AccountUpdate struct {
	Username *string
	Email    *string
	Password *string
}

// AccountPatch is the set of account fields to overwrite. Nil fields are preserved.
type AccountPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.PasswordHash == nil
}
