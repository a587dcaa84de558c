package model

import "context"

// ContextManager stores and retrieves the authenticated account ID on a request context.
type ContextManager interface {
	SetAccountIDToContext(ctx context.Context, accountID string) context.Context
	GetAccountIDFromContext(ctx context.Context) (string, bool)
}
