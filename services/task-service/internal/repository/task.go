package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
)

// TaskRepository defines the interface for task collection operations.
// Every method addresses the collection by the owner's raw email; the
// document key is derived with model.SanitizeEmail inside the repository only.
type TaskRepository interface {
	// AddTask merges a task into the owner's collection, creating the collection if absent.
	AddTask(ctx context.Context, email, taskID string, task *model.Task) error

	// GetTaskCollection returns every task of the owner.
	// It returns mongo.ErrNoDocuments when the owner has no collection.
	GetTaskCollection(ctx context.Context, email string) (model.TaskCollection, error)

	// UpdateTask sets the non-nil fields of params on an existing task and returns the result.
	// It returns mongo.ErrNoDocuments when the collection or the task does not exist.
	UpdateTask(ctx context.Context, email, taskID string, params UpdateTaskParams) (*model.Task, error)

	// DeleteTask removes a single task from the owner's collection.
	// It returns mongo.ErrNoDocuments when the collection or the task does not exist.
	DeleteTask(ctx context.Context, email, taskID string) error
}

// UpdateTaskParams defines the optional parameters for updating a task.
// Only the fields that are not nil will be updated.
type UpdateTaskParams struct {
	Title       *string
	Description *string
}

var ErrNoTaskFieldsToUpdate = errors.New("no task fields to update")

const taskCollection = "tasks"

type taskMongoRepository struct {
	db      *mongo.Database
	timeout time.Duration
}

// NewTaskMongoRepository creates a MongoDB repository for task collections.
// Each call is bounded by timeout in addition to the caller's context.
func NewTaskMongoRepository(db *mongo.Database, timeout time.Duration) TaskRepository {
	return &taskMongoRepository{db: db, timeout: timeout}
}

func (r *taskMongoRepository) AddTask(ctx context.Context, email, taskID string, task *model.Task) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Collection(taskCollection).UpdateOne(
		ctx,
		bson.M{"_id": model.SanitizeEmail(email)},
		addTaskUpdate(taskID, task),
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (r *taskMongoRepository) GetTaskCollection(ctx context.Context, email string) (model.TaskCollection, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.db.Collection(taskCollection).FindOne(ctx, bson.M{"_id": model.SanitizeEmail(email)}).Raw()
	if err != nil {
		return nil, err
	}

	return decodeTaskCollection(raw)
}

func (r *taskMongoRepository) UpdateTask(
	ctx context.Context,
	email string,
	taskID string,
	params UpdateTaskParams,
) (*model.Task, error) {
	update, err := updateTaskFields(taskID, params)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result := r.db.Collection(taskCollection).FindOneAndUpdate(
		ctx,
		taskExistsFilter(model.SanitizeEmail(email), taskID),
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	raw, err := result.Raw()
	if err != nil {
		return nil, err
	}

	return decodeTask(raw, taskID)
}

func (r *taskMongoRepository) DeleteTask(ctx context.Context, email, taskID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.db.Collection(taskCollection).UpdateOne(
		ctx,
		taskExistsFilter(model.SanitizeEmail(email), taskID),
		deleteTaskUpdate(taskID),
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

// addTaskUpdate sets a single top-level task field, leaving sibling tasks untouched.
func addTaskUpdate(taskID string, task *model.Task) bson.M {
	return bson.M{"$set": bson.M{taskID: task}}
}

// taskExistsFilter matches the collection document only if it holds taskID.
func taskExistsFilter(key, taskID string) bson.M {
	return bson.M{
		"_id":  key,
		taskID: bson.M{"$exists": true},
	}
}

// updateTaskFields targets the nested fields of one task so createdAt is never rewritten.
func updateTaskFields(taskID string, params UpdateTaskParams) (bson.M, error) {
	set := bson.M{}
	if params.Title != nil {
		set[taskID+".title"] = *params.Title
	}
	if params.Description != nil {
		set[taskID+".description"] = *params.Description
	}

	if len(set) == 0 {
		return nil, ErrNoTaskFieldsToUpdate
	}

	return bson.M{"$set": set}, nil
}

func deleteTaskUpdate(taskID string) bson.M {
	return bson.M{"$unset": bson.M{taskID: ""}}
}

// decodeTaskCollection turns a collection document into a TaskCollection, skipping _id.
func decodeTaskCollection(raw bson.Raw) (model.TaskCollection, error) {
	elems, err := raw.Elements()
	if err != nil {
		return nil, err
	}

	tasks := make(model.TaskCollection, len(elems))
	for _, elem := range elems {
		key := elem.Key()
		if key == "_id" {
			continue
		}

		var task model.Task
		if err := elem.Value().Unmarshal(&task); err != nil {
			return nil, fmt.Errorf("decode task %s: %w", key, err)
		}
		tasks[key] = task
	}

	return tasks, nil
}

func decodeTask(raw bson.Raw, taskID string) (*model.Task, error) {
	value, err := raw.LookupErr(taskID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var task model.Task
	if err := value.Unmarshal(&task); err != nil {
		return nil, fmt.Errorf("decode task %s: %w", taskID, err)
	}

	return &task, nil
}
