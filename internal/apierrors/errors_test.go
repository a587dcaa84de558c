package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("service: %w", NewErrPermissionDenied())
	apiErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Permission Denied", apiErr.Message)

	_, ok = As(errors.New("boom"))
	assert.False(t, ok)
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "User Already Exists", NewErrUserAlreadyExists().Error())

	cause := errors.New("token is expired")
	err := NewErrInvalidToken(cause)
	assert.Equal(t, "Invalid JWT Token: token is expired", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAPIError_Body(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(NewErrInvalidToken(errors.New("expired")).Body())
	require.NoError(t, err)
	assert.JSONEq(t, `{"errorMsg":"Invalid JWT Token"}`, string(raw))
}
