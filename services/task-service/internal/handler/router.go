package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/httputil"
	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

// NewRouter wires the task-service HTTP routes.
func NewRouter(
	logger *zerolog.Logger,
	allowedOrigins []string,
	pinger httputil.Pinger,
	taskUsecase usecase.TaskUsecase,
	userUsecase usecase.UserUsecase,
) http.Handler {
	v := validator.New()
	tasks := newTaskHTTPHandler(logger, v, taskUsecase)
	users := newUserHTTPHandler(logger, v, userUsecase)

	r := httputil.NewRouter(logger, allowedOrigins, pinger)

	r.Post("/register", users.Register)
	r.Put("/edit-profile/{uid}", users.EditProfile)

	r.Post("/tasks", tasks.CreateTask)
	r.Get("/tasks", tasks.ListTasks)
	r.Put("/tasks/{taskId}", tasks.UpdateTask)
	r.Delete("/tasks/{taskId}", tasks.DeleteTask)

	return r
}
