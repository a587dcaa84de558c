package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/gophtodo-server/internal/mocks"
	"github.com/dtroode/gophtodo-server/internal/testutil"
)

func TestHealth_Check(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "up", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "down", pingErr: assert.AnError, wantStatus: http.StatusServiceUnavailable, wantBody: `{"errorMsg":"Database Unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinger := mocks.NewPinger(t)
			pinger.On("Ping", mock.Anything).Return(tt.pingErr)

			r := gin.New()
			r.GET("/health", NewHealth(pinger, testutil.MakeNoopLogger()).Check)

			w := doRequest(t, r, http.MethodGet, "/health", "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
