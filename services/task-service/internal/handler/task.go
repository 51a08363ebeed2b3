package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/payload"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/httputil"
	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

type taskHTTPHandler struct {
	taskUsecase usecase.TaskUsecase
	validator   *validator.Validator
	logger      *zerolog.Logger
}

func newTaskHTTPHandler(
	logger *zerolog.Logger,
	v *validator.Validator,
	taskUsecase usecase.TaskUsecase,
) *taskHTTPHandler {
	return &taskHTTPHandler{
		taskUsecase: taskUsecase,
		validator:   v,
		logger:      logger,
	}
}

func (h *taskHTTPHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateTaskRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.WriteValidationError(w, h.logger, err)
		return
	}

	created, err := h.taskUsecase.CreateTask(r.Context(), usecase.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Email:       req.Email,
	})
	if err != nil {
		h.writeError(w, err, "failed to create task")
		return
	}

	httputil.WriteJSON(w, h.logger, http.StatusOK, payload.CreateTaskResponse{
		ID:          created.ID,
		Title:       created.Title,
		Description: created.Description,
		CreatedAt:   created.CreatedAt,
	})
}

func (h *taskHTTPHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	query := payload.ListTasksQuery{Email: r.URL.Query().Get("email")}
	if err := h.validator.Struct(query); err != nil {
		httputil.WriteValidationError(w, h.logger, err)
		return
	}

	tasks, err := h.taskUsecase.ListTasks(r.Context(), query.Email)
	if err != nil {
		h.writeError(w, err, "failed to list tasks")
		return
	}

	httputil.WriteJSON(w, h.logger, http.StatusOK, tasks)
}

func (h *taskHTTPHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateTaskRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.WriteValidationError(w, h.logger, err)
		return
	}

	task, err := h.taskUsecase.UpdateTask(r.Context(), usecase.UpdateTaskParams{
		TaskID:      chi.URLParam(r, "taskId"),
		Title:       req.Title,
		Description: req.Description,
		Email:       req.Email,
	})
	if err != nil {
		h.writeError(w, err, "failed to update task")
		return
	}

	httputil.WriteJSON(w, h.logger, http.StatusOK, payload.UpdateTaskResponse{
		Message: "Task updated",
		Task:    *task,
	})
}

// DeleteTask reads the owner's email from the JSON body, or from ?email= when the body has none.
func (h *taskHTTPHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	var req payload.DeleteTaskRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		req.Email = r.URL.Query().Get("email")
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.WriteValidationError(w, h.logger, err)
		return
	}

	taskID := chi.URLParam(r, "taskId")
	if err := h.taskUsecase.DeleteTask(r.Context(), taskID, req.Email); err != nil {
		h.writeError(w, err, "failed to delete task")
		return
	}

	httputil.WriteJSON(w, h.logger, http.StatusOK, httputil.MessageResponse{
		Message: fmt.Sprintf("Task %s deleted.", taskID),
	})
}

func (h *taskHTTPHandler) writeError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		httputil.WriteError(w, h.logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrInvalidTaskID):
		httputil.WriteError(w, h.logger, http.StatusBadRequest, "invalid task id")
	case errors.Is(err, usecase.ErrTaskCollectionNotFound):
		httputil.WriteError(w, h.logger, http.StatusNotFound, "task collection not found")
	case errors.Is(err, usecase.ErrTaskNotFound):
		httputil.WriteError(w, h.logger, http.StatusNotFound, "task not found")
	default:
		httputil.WriteInternalError(w, h.logger, err, msg)
	}
}
