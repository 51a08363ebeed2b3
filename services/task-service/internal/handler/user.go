package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/payload"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/httputil"
	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

type userHTTPHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.Validator
	logger      *zerolog.Logger
}

func newUserHTTPHandler(
	logger *zerolog.Logger,
	v *validator.Validator,
	userUsecase usecase.UserUsecase,
) *userHTTPHandler {
	return &userHTTPHandler{
		userUsecase: userUsecase,
		validator:   v,
		logger:      logger,
	}
}

func (h *userHTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.WriteValidationError(w, h.logger, err)
		return
	}

	user, err := h.userUsecase.RegisterUser(r.Context(), usecase.RegisterUserParams{
		UID:   req.UID,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.writeError(w, err, "failed to register user")
		return
	}

	httputil.WriteJSON(w, h.logger, http.StatusCreated, payload.RegisterResponse{
		UID:   user.UID,
		Name:  user.Name,
		Email: user.Email,
	})
}

func (h *userHTTPHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	var req payload.EditProfileRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.WriteValidationError(w, h.logger, err)
		return
	}

	err := h.userUsecase.EditProfile(r.Context(), usecase.EditProfileParams{
		UID:   chi.URLParam(r, "uid"),
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.writeError(w, err, "failed to update profile")
		return
	}

	httputil.WriteJSON(w, h.logger, http.StatusOK, httputil.MessageResponse{Message: "Profile updated."})
}

func (h *userHTTPHandler) writeError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		httputil.WriteError(w, h.logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrUserNotFound):
		httputil.WriteError(w, h.logger, http.StatusNotFound, "user not found")
	default:
		httputil.WriteInternalError(w, h.logger, err, msg)
	}
}
