package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/repository"
)

// TaskUsecase defines the operations on a user's task collection.
type TaskUsecase interface {
	CreateTask(ctx context.Context, params CreateTaskParams) (*CreatedTask, error)
	ListTasks(ctx context.Context, email string) (model.TaskCollection, error)
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*model.Task, error)
	DeleteTask(ctx context.Context, taskID, email string) error
}

// CreateTaskParams defines the parameters for creating a task.
type CreateTaskParams struct {
	Title       string
	Description string
	Email       string
}

// UpdateTaskParams defines the parameters for updating a task.
// Empty Title or Description leaves the stored value unchanged.
type UpdateTaskParams struct {
	TaskID      string
	Title       string
	Description string
	Email       string
}

// CreatedTask is a newly stored task together with its ID.
type CreatedTask struct {
	ID string
	model.Task
}

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidTaskID          = errors.New("invalid task id")
	ErrTaskNotFound           = errors.New("task not found")
	ErrTaskCollectionNotFound = errors.New("task collection not found")
)

// taskIDPattern admits UUIDs and legacy millisecond IDs while rejecting
// anything MongoDB would read as a field path or an operator.
var taskIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type taskUsecase struct {
	taskRepo repository.TaskRepository
	newID    func() (string, error)
	now      func() time.Time
}

func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		newID:    newTaskID,
		now:      time.Now,
	}
}

func (u *taskUsecase) CreateTask(ctx context.Context, params CreateTaskParams) (*CreatedTask, error) {
	if params.Title == "" || params.Description == "" || params.Email == "" {
		return nil, fmt.Errorf("%w: title, description and email are required", ErrInvalidInput)
	}

	taskID, err := u.newID()
	if err != nil {
		return nil, err
	}

	// BSON dates carry millisecond precision.
	task := model.Task{
		Title:       params.Title,
		Description: params.Description,
		CreatedAt:   u.now().UTC().Truncate(time.Millisecond),
	}

	if err := u.taskRepo.AddTask(ctx, params.Email, taskID, &task); err != nil {
		return nil, err
	}

	return &CreatedTask{ID: taskID, Task: task}, nil
}

func (u *taskUsecase) ListTasks(ctx context.Context, email string) (model.TaskCollection, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	tasks, err := u.taskRepo.GetTaskCollection(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.TaskCollection{}, nil
		}

		return nil, err
	}

	return tasks, nil
}

func (u *taskUsecase) UpdateTask(ctx context.Context, params UpdateTaskParams) (*model.Task, error) {
	if params.Email == "" || (params.Title == "" && params.Description == "") {
		return nil, fmt.Errorf("%w: email and updated task data are required", ErrInvalidInput)
	}

	if !validTaskID(params.TaskID) {
		return nil, ErrInvalidTaskID
	}

	var update repository.UpdateTaskParams
	if params.Title != "" {
		update.Title = &params.Title
	}
	if params.Description != "" {
		update.Description = &params.Description
	}

	task, err := u.taskRepo.UpdateTask(ctx, params.Email, params.TaskID, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}

		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(ctx context.Context, taskID, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if !validTaskID(taskID) {
		return ErrInvalidTaskID
	}

	tasks, err := u.taskRepo.GetTaskCollection(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTaskCollectionNotFound
		}

		return err
	}

	if _, ok := tasks[taskID]; !ok {
		return ErrTaskNotFound
	}

	if err := u.taskRepo.DeleteTask(ctx, email, taskID); err != nil {
		// Deleted concurrently between the read and the write.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTaskNotFound
		}

		return err
	}

	return nil
}

func validTaskID(taskID string) bool {
	return taskID != "_id" && taskIDPattern.MatchString(taskID)
}

// newTaskID returns a time-ordered UUIDv7, unique even for tasks created in the same millisecond.
func newTaskID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
