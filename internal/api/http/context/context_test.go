package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_SetAndGetAccountID(t *testing.T) {
	m := NewManager()
	ctx := m.SetAccountIDToContext(stdctx.Background(), "65f1c0ffee0000000000abcd")

	got, ok := m.GetAccountIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "65f1c0ffee0000000000abcd", got)
}

func TestManager_GetAccountID_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetAccountIDFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetAccountID_Empty(t *testing.T) {
	m := NewManager()
	ctx := m.SetAccountIDToContext(stdctx.Background(), "")
	_, ok := m.GetAccountIDFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_SetAccountID_Overrides(t *testing.T) {
	m := NewManager()
	ctx := m.SetAccountIDToContext(stdctx.Background(), "first")
	ctx = m.SetAccountIDToContext(ctx, "second")

	got, ok := m.GetAccountIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "second", got)
}
