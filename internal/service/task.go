package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/gophtodo-server/internal/apierrors"
	"github.com/dtroode/gophtodo-server/internal/logger"
	"github.com/dtroode/gophtodo-server/internal/model"
)

type Task struct {
	taskStore    model.TaskStore
	accountStore model.AccountStore
	logger       *logger.Logger
}

func NewTask(
	taskStore model.TaskStore,
	accountStore model.AccountStore,
	logger *logger.Logger,
) *Task {
	return &Task{
		taskStore:    taskStore,
		accountStore: accountStore,
		logger:       logger,
	}
}

func (s *Task) CreateTask(ctx context.Context, params model.CreateTaskParams) (model.Task, error) {
	_, err := s.accountStore.GetByID(ctx, params.OwnerID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apierrors.NewErrInvalidUser()
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	task := model.Task{
		OwnerID: params.OwnerID,
		TaskID:  params.TaskID,
		Title:   params.Title,
		Status:  params.Status,
	}

	err = s.taskStore.Create(ctx, task)
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.Task{}, apierrors.NewErrTodoAlreadyExists()
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to save task: %w", err)
	}

	s.logger.Info("Task service: task created",
		"account_id", params.OwnerID,
		"task_id", params.TaskID)

	return task, nil
}

func (s *Task) GetTasks(ctx context.Context, ownerID string) ([]model.Task, error) {
	tasks, err := s.taskStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by owner id: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies the supplied fields to the caller's task. A task that is
// missing and a task owned by someone else are reported identically.
func (s *Task) UpdateTask(ctx context.Context, ownerID string, taskID int64, patch model.TaskPatch) error {
	patch = model.TaskPatch{
		Title:  nonEmpty(patch.Title),
		Status: nonEmpty(patch.Status),
	}
	if patch.IsEmpty() {
		return apierrors.NewErrNothingToUpdate()
	}

	matched, err := s.taskStore.Update(ctx, ownerID, taskID, patch)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if matched == 0 {
		s.logger.Info("Task service: task not found for owner",
			"account_id", ownerID,
			"task_id", taskID)
		return apierrors.NewErrPermissionDenied()
	}

	return nil
}

func (s *Task) DeleteTask(ctx context.Context, ownerID string, taskID int64) error {
	deleted, err := s.taskStore.Delete(ctx, ownerID, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if deleted == 0 {
		s.logger.Info("Task service: task not found for owner",
			"account_id", ownerID,
			"task_id", taskID)
		return apierrors.NewErrPermissionDenied()
	}

	s.logger.Info("Task service: task deleted",
		"account_id", ownerID,
		"task_id", taskID)

	return nil
}
