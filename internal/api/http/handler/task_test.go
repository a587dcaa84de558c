package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/gophtodo-server/internal/api/http/context"
	"github.com/dtroode/gophtodo-server/internal/apierrors"
	"github.com/dtroode/gophtodo-server/internal/mocks"
	"github.com/dtroode/gophtodo-server/internal/model"
	"github.com/dtroode/gophtodo-server/internal/testutil"
)

func newTaskRouter(svc *mocks.TaskService, accountID string) *gin.Engine {
	ctxMgr := httpctx.NewManager()
	h := NewTask(svc, ctxMgr, testutil.MakeNoopLogger())

	r := gin.New()
	g := r.Group("/todo", withAccount(ctxMgr, accountID))
	g.POST("", h.CreateTask)
	g.GET("", h.GetTasks)
	g.PUT("/:id", h.UpdateTask)
	g.DELETE("/:id", h.DeleteTask)
	return r
}

func TestTask_CreateTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			body:       `{"id":5,"taskTitle":"buy milk","status":"pending"}`,
			callsSvc:   true,
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"Todo Created Successfully"}`,
		},
		{
			name:       "missing id",
			body:       `{"taskTitle":"buy milk","status":"pending"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errorMsg":"Please Enter Valid Todo Details"}`,
		},
		{
			name:       "empty title",
			body:       `{"id":5,"taskTitle":"","status":"pending"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errorMsg":"Please Enter Valid Todo Details"}`,
		},
		{
			name:       "non integer id",
			body:       `{"id":"five","taskTitle":"buy milk","status":"pending"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errorMsg":"Please Enter Valid Todo Details"}`,
		},
		{
			name:       "invalid user",
			body:       `{"id":5,"taskTitle":"buy milk","status":"pending"}`,
			callsSvc:   true,
			serviceErr: apierrors.NewErrInvalidUser(),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"errorMsg":"Invalid User"}`,
		},
		{
			name:       "duplicate",
			body:       `{"id":5,"taskTitle":"buy milk","status":"pending"}`,
			callsSvc:   true,
			serviceErr: apierrors.NewErrTodoAlreadyExists(),
			wantStatus: http.StatusConflict,
			wantBody:   `{"errorMsg":"Todo Already Exists"}`,
		},
		{
			name:       "store failure",
			body:       `{"id":5,"taskTitle":"buy milk","status":"pending"}`,
			callsSvc:   true,
			serviceErr: assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"errorMsg":"Failed to add Todo"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewTaskService(t)
			if tt.callsSvc {
				svc.On("CreateTask", mock.Anything, model.CreateTaskParams{
					OwnerID: "id-1", TaskID: 5, Title: "buy milk", Status: "pending",
				}).Return(model.Task{}, tt.serviceErr)
			}

			w := doRequest(t, newTaskRouter(svc, "id-1"), http.MethodPost, "/todo", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestTask_CreateTask_Unauthenticated(t *testing.T) {
	svc := mocks.NewTaskService(t)

	w := doRequest(t, newTaskRouter(svc, ""), http.MethodPost, "/todo", `{"id":5,"taskTitle":"t","status":"s"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestTask_GetTasks(t *testing.T) {
	svc := mocks.NewTaskService(t)
	svc.On("GetTasks", mock.Anything, "id-1").Return([]model.Task{
		{OwnerID: "id-1", TaskID: 1, Title: "a", Status: "pending"},
		{OwnerID: "id-1", TaskID: 2, Title: "b", Status: "done"},
	}, nil)

	w := doRequest(t, newTaskRouter(svc, "id-1"), http.MethodGet, "/todo", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"taskTitle":"a","status":"pending"},{"id":2,"taskTitle":"b","status":"done"}]`, w.Body.String())
}

func TestTask_GetTasks_Empty(t *testing.T) {
	svc := mocks.NewTaskService(t)
	svc.On("GetTasks", mock.Anything, "id-1").Return(nil, nil)

	w := doRequest(t, newTaskRouter(svc, "id-1"), http.MethodGet, "/todo", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestTask_UpdateTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		body       string
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "status only",
			path:       "/todo/5",
			body:       `{"status":"done"}`,
			callsSvc:   true,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Todo Updated Successfully"}`,
		},
		{
			name:       "nothing to update",
			path:       "/todo/5",
			body:       `{}`,
			callsSvc:   true,
			serviceErr: apierrors.NewErrNothingToUpdate(),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errorMsg":"Nothing to Update"}`,
		},
		{
			name:       "other owner",
			path:       "/todo/5",
			body:       `{"status":"done"}`,
			callsSvc:   true,
			serviceErr: apierrors.NewErrPermissionDenied(),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"errorMsg":"Permission Denied"}`,
		},
		{
			name:       "non integer id",
			path:       "/todo/abc",
			body:       `{"status":"done"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errorMsg":"Invalid Todo Id"}`,
		},
		{
			name:       "malformed json",
			path:       "/todo/5",
			body:       `{"status":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errorMsg":"Invalid Request Body"}`,
		},
		{
			name:       "store failure",
			path:       "/todo/5",
			body:       `{"status":"done"}`,
			callsSvc:   true,
			serviceErr: assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"errorMsg":"Failed to Update Todo"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewTaskService(t)
			if tt.callsSvc {
				svc.On("UpdateTask", mock.Anything, "id-1", int64(5), mock.AnythingOfType("model.TaskPatch")).Return(tt.serviceErr)
			}

			w := doRequest(t, newTaskRouter(svc, "id-1"), http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestTask_UpdateTask_PassesSuppliedFields(t *testing.T) {
	svc := mocks.NewTaskService(t)
	svc.On("UpdateTask", mock.Anything, "id-1", int64(5), mock.MatchedBy(func(p model.TaskPatch) bool {
		return p.Title == nil && p.Status != nil && *p.Status == "done"
	})).Return(nil)

	w := doRequest(t, newTaskRouter(svc, "id-1"), http.MethodPut, "/todo/5", `{"status":"done"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTask_DeleteTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "deleted",
			path:       "/todo/5",
			callsSvc:   true,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Todo deleted successfully"}`,
		},
		{
			name:       "not owned",
			path:       "/todo/5",
			callsSvc:   true,
			serviceErr: apierrors.NewErrPermissionDenied(),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"errorMsg":"Permission Denied"}`,
		},
		{
			name:       "non integer id",
			path:       "/todo/5x",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errorMsg":"Invalid Todo Id"}`,
		},
		{
			name:       "store failure",
			path:       "/todo/5",
			callsSvc:   true,
			serviceErr: assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"errorMsg":"Failed to delete Todo"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewTaskService(t)
			if tt.callsSvc {
				svc.On("DeleteTask", mock.Anything, "id-1", int64(5)).Return(tt.serviceErr)
			}

			w := doRequest(t, newTaskRouter(svc, "id-1"), http.MethodDelete, tt.path, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
