package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/gophtodo-server/internal/apierrors"
	"github.com/dtroode/gophtodo-server/internal/logger"
	"github.com/dtroode/gophtodo-server/internal/model"
)

// TaskService defines owner-scoped task operations.
type TaskService interface {
	CreateTask(ctx context.Context, params model.CreateTaskParams) (model.Task, error)
	GetTasks(ctx context.Context, ownerID string) ([]model.Task, error)
	UpdateTask(ctx context.Context, ownerID string, taskID int64, patch model.TaskPatch) error
	DeleteTask(ctx context.Context, ownerID string, taskID int64) error
}

type createTaskRequest struct {
	ID     *int64 `json:"id"`
	Title  string `json:"taskTitle"`
	Status string `json:"status"`
}

type updateTaskRequest struct {
	Title  *string `json:"taskTitle"`
	Status *string `json:"status"`
}

type taskResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"taskTitle"`
	Status string `json:"status"`
}

// Task handles HTTP endpoints for the caller's tasks.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// CreateTask stores a task with a caller-chosen id.
func (h *Task) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.contextManager.GetAccountIDFromContext(ctx)
	if !ok {
		handleError(c, apierrors.NewErrInvalidToken(nil), "")
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierrors.NewErrInvalidTodoDetails(), "")
		return
	}
	if req.ID == nil || req.Title == "" || req.Status == "" {
		handleError(c, apierrors.NewErrInvalidTodoDetails(), "")
		return
	}

	h.logger.Debug("Task handler: processing create request",
		"account_id", accountID,
		"task_id", *req.ID)

	_, err := h.taskService.CreateTask(ctx, model.CreateTaskParams{
		OwnerID: accountID,
		TaskID:  *req.ID,
		Title:   req.Title,
		Status:  req.Status,
	})
	if err != nil {
		logFailure(h.logger, "Task handler: create failed", err,
			"account_id", accountID,
			"task_id", *req.ID)
		handleError(c, err, "Failed to add Todo")
		return
	}

	c.JSON(http.StatusCreated, messageResponse{Message: "Todo Created Successfully"})
}

// GetTasks lists the caller's tasks.
func (h *Task) GetTasks(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.contextManager.GetAccountIDFromContext(ctx)
	if !ok {
		handleError(c, apierrors.NewErrInvalidToken(nil), "")
		return
	}

	tasks, err := h.taskService.GetTasks(ctx, accountID)
	if err != nil {
		logFailure(h.logger, "Task handler: list failed", err,
			"account_id", accountID)
		handleError(c, err, "Failed to get Todos")
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, taskResponse{ID: t.TaskID, Title: t.Title, Status: t.Status})
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateTask overwrites the supplied fields of one of the caller's tasks.
func (h *Task) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.contextManager.GetAccountIDFromContext(ctx)
	if !ok {
		handleError(c, apierrors.NewErrInvalidToken(nil), "")
		return
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		handleError(c, err, "")
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		handleError(c, apierrors.NewErrInvalidBody(err), "")
		return
	}

	h.logger.Debug("Task handler: processing update request",
		"account_id", accountID,
		"task_id", taskID)

	err = h.taskService.UpdateTask(ctx, accountID, taskID, model.TaskPatch{
		Title:  req.Title,
		Status: req.Status,
	})
	if err != nil {
		logFailure(h.logger, "Task handler: update failed", err,
			"account_id", accountID,
			"task_id", taskID)
		handleError(c, err, "Failed to Update Todo")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Todo Updated Successfully"})
}

// DeleteTask removes one of the caller's tasks.
func (h *Task) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.contextManager.GetAccountIDFromContext(ctx)
	if !ok {
		handleError(c, apierrors.NewErrInvalidToken(nil), "")
		return
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		handleError(c, err, "")
		return
	}

	if err := h.taskService.DeleteTask(ctx, accountID, taskID); err != nil {
		logFailure(h.logger, "Task handler: delete failed", err,
			"account_id", accountID,
			"task_id", taskID)
		handleError(c, err, "Failed to delete Todo")
		return
	}

	h.logger.Info("Task handler: task deleted",
		"account_id", accountID,
		"task_id", taskID)

	c.JSON(http.StatusOK, messageResponse{Message: "Todo deleted successfully"})
}

func taskIDParam(c *gin.Context) (int64, error) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apierrors.NewErrInvalidTodoID()
	}
	return taskID, nil
}
