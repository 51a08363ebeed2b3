package payload

import (
	"time"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
)

type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Email       string `json:"email"       validate:"required"`
}

type CreateTaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListTasksQuery struct {
	Email string `json:"email" validate:"required"`
}

// UpdateTaskRequest requires at least one of Title and Description.
type UpdateTaskRequest struct {
	Title       string `json:"title"       validate:"required_without=Description"`
	Description string `json:"description" validate:"required_without=Title"`
	Email       string `json:"email"       validate:"required"`
}

type UpdateTaskResponse struct {
	Message string     `json:"message"`
	Task    model.Task `json:"task"`
}

type DeleteTaskRequest struct {
	Email string `json:"email" validate:"required"`
}
