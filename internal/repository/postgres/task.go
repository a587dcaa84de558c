package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/gophtodo-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) error {
	ownerID, err := uuid.Parse(task.OwnerID)
	if err != nil {
		return fmt.Errorf("invalid owner id %q: %w", task.OwnerID, err)
	}

	query := `INSERT INTO tasks (owner_id, task_id, title, status) VALUES ($1, $2, $3, $4)`

	_, err = r.db.Exec(ctx, query, ownerID, task.TaskID, task.Title, task.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return []model.Task{}, nil
	}

	query := `SELECT task_id, title, status FROM tasks WHERE owner_id = $1 ORDER BY task_id`

	rows, err := r.db.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		task := model.Task{OwnerID: owner.String()}
		if err := rows.Scan(&task.TaskID, &task.Title, &task.Status); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, ownerID string, taskID int64, patch model.TaskPatch) (int64, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return 0, nil
	}

	query := `UPDATE tasks
			  SET title = COALESCE($3::text, title),
			      status = COALESCE($4::text, status),
			      updated_at = now()
			  WHERE owner_id = $1 AND task_id = $2`

	tag, err := r.db.Exec(ctx, query, owner, taskID, patch.Title, patch.Status)
	if err != nil {
		return 0, fmt.Errorf("failed to update task: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID string, taskID int64) (int64, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return 0, nil
	}

	query := `DELETE FROM tasks WHERE owner_id = $1 AND task_id = $2`

	tag, err := r.db.Exec(ctx, query, owner, taskID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task: %w", err)
	}

	return tag.RowsAffected(), nil
}
