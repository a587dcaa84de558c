package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	httpctx "github.com/dtroode/gophtodo-server/internal/api/http/context"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withAccount marks every request as authenticated by accountID. An empty
// accountID leaves the request unauthenticated.
func withAccount(ctxMgr *httpctx.Manager, accountID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if accountID != "" {
			c.Request = c.Request.WithContext(ctxMgr.SetAccountIDToContext(c.Request.Context(), accountID))
		}
		c.Next()
	}
}

func doRequest(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
