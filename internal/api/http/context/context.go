package context

import (
	"context"
)

type accountIDKey struct{}

// Manager stores the authenticated account ID on a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetAccountIDToContext returns a copy of ctx carrying accountID.
func (m *Manager) SetAccountIDToContext(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey{}, accountID)
}

// GetAccountIDFromContext returns the account ID set by the authentication
// middleware. An empty ID is reported as missing.
func (m *Manager) GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(accountIDKey{}).(string)
	if !ok || accountID == "" {
		return "", false
	}

	return accountID, true
}
