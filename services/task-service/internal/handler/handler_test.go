package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/usecase"
)

type fakeTaskUsecase struct {
	created *usecase.CreatedTask
	tasks   model.TaskCollection
	updated *model.Task
	err     error

	createParams usecase.CreateTaskParams
	listEmail    string
	updateParams usecase.UpdateTaskParams
	deleteID     string
	deleteEmail  string
}

func (f *fakeTaskUsecase) CreateTask(_ context.Context, params usecase.CreateTaskParams) (*usecase.CreatedTask, error) {
	f.createParams = params
	return f.created, f.err
}

func (f *fakeTaskUsecase) ListTasks(_ context.Context, email string) (model.TaskCollection, error) {
	f.listEmail = email
	return f.tasks, f.err
}

func (f *fakeTaskUsecase) UpdateTask(_ context.Context, params usecase.UpdateTaskParams) (*model.Task, error) {
	f.updateParams = params
	return f.updated, f.err
}

func (f *fakeTaskUsecase) DeleteTask(_ context.Context, taskID, email string) error {
	f.deleteID = taskID
	f.deleteEmail = email
	return f.err
}

type fakeUserUsecase struct {
	user *model.User
	err  error

	registerParams usecase.RegisterUserParams
	editParams     usecase.EditProfileParams
}

func (f *fakeUserUsecase) RegisterUser(_ context.Context, params usecase.RegisterUserParams) (*model.User, error) {
	f.registerParams = params
	return f.user, f.err
}

func (f *fakeUserUsecase) EditProfile(_ context.Context, params usecase.EditProfileParams) error {
	f.editParams = params
	return f.err
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

var (
	errStore  = errors.New("mongo: connection refused")
	createdAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
)

func newTestRouter(tasks *fakeTaskUsecase, users *fakeUserUsecase) http.Handler {
	logger := zerolog.Nop()
	return NewRouter(&logger, []string{"*"}, okPinger{}, tasks, users)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
