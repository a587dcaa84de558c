package model

import "context"

// TaskStore defines persistence operations for tasks.
// Mutations are always scoped by owner and task identifier together.
type TaskStore interface {
	Create(ctx context.Context, task Task) error
	ListByOwner(ctx context.Context, ownerID string) ([]Task, error)
	Update(ctx context.Context, ownerID string, taskID int64, patch TaskPatch) (int64, error)
	Delete(ctx context.Context, ownerID string, taskID int64) (int64, error)
}

// Task is a to-do item. TaskID is chosen by the client and unique per owner.
type Task struct {
	OwnerID string
	TaskID  int64
	Title   string
	Status  string
}

// CreateTaskParams contains parameters to create a task.
type CreateTaskParams struct {
	OwnerID string
	TaskID  int64
	Title   string
	Status  string
}

// TaskPatch is the set of task fields to overwrite. Nil fields are preserved.
type TaskPatch struct {
	Title  *string
	Status *string
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Status == nil
}
