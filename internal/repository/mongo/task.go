package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dtroode/gophtodo-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type taskDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID primitive.ObjectID `bson:"userId"`
	TaskID  int64              `bson:"taskId"`
	Title   string             `bson:"taskTitle"`
	Status  string             `bson:"status"`
}

func (d taskDocument) toModel() model.Task {
	return model.Task{
		OwnerID: d.OwnerID.Hex(),
		TaskID:  d.TaskID,
		Title:   d.Title,
		Status:  d.Status,
	}
}

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) error {
	ownerID, err := primitive.ObjectIDFromHex(task.OwnerID)
	if err != nil {
		return fmt.Errorf("invalid owner id %q: %w", task.OwnerID, err)
	}

	_, err = r.db.tasks().InsertOne(ctx, taskDocument{
		OwnerID: ownerID,
		TaskID:  task.TaskID,
		Title:   task.Title,
		Status:  task.Status,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []model.Task{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "taskId", Value: 1}})
	cursor, err := r.db.tasks().Find(ctx, bson.M{"userId": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, doc.toModel())
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, ownerID string, taskID int64, patch model.TaskPatch) (int64, error) {
	filter, ok := ownedTaskFilter(ownerID, taskID)
	if !ok {
		return 0, nil
	}

	res, err := r.db.tasks().UpdateOne(ctx, filter, bson.M{"$set": taskPatchDocument(patch)})
	if err != nil {
		return 0, fmt.Errorf("failed to update task: %w", err)
	}

	return res.MatchedCount, nil
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID string, taskID int64) (int64, error) {
	filter, ok := ownedTaskFilter(ownerID, taskID)
	if !ok {
		return 0, nil
	}

	res, err := r.db.tasks().DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task: %w", err)
	}

	return res.DeletedCount, nil
}

// ownedTaskFilter matches a task by its id and owner. An owner id that is not
// a valid ObjectID cannot own anything, so ok is false.
func ownedTaskFilter(ownerID string, taskID int64) (bson.M, bool) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, false
	}
	return bson.M{"taskId": taskID, "userId": oid}, true
}

func taskPatchDocument(patch model.TaskPatch) bson.M {
	set := bson.M{}
	if patch.Title != nil {
		set["taskTitle"] = *patch.Title
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	return set
}
