package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/task-tracker-api/services/auth-service/internal/payload"
	"github.com/vasapolrittideah/task-tracker-api/services/auth-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/httputil"
	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

type authHTTPHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.Validator
	logger      *zerolog.Logger
}

// NewRouter wires the auth-service HTTP routes.
func NewRouter(
	logger *zerolog.Logger,
	allowedOrigins []string,
	pinger httputil.Pinger,
	authUsecase usecase.AuthUsecase,
) http.Handler {
	h := &authHTTPHandler{
		authUsecase: authUsecase,
		validator:   validator.New(),
		logger:      logger,
	}

	r := httputil.NewRouter(logger, allowedOrigins, pinger)
	r.Post("/auth/signup", h.Signup)
	r.Post("/auth/login", h.Login)

	return r
}

func (h *authHTTPHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req payload.SignupRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.WriteValidationError(w, h.logger, err)
		return
	}

	_, err := h.authUsecase.Signup(r.Context(), usecase.SignupParams{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			httputil.WriteError(w, h.logger, http.StatusBadRequest, "email already registered")
		default:
			httputil.WriteInternalError(w, h.logger, err, "failed to sign up")
		}
		return
	}

	httputil.WriteJSON(w, h.logger, http.StatusCreated, httputil.MessageResponse{
		Message: "User registered successfully",
	})
}

func (h *authHTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.WriteValidationError(w, h.logger, err)
		return
	}

	user, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httputil.WriteError(w, h.logger, http.StatusNotFound, "user not found")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httputil.WriteError(w, h.logger, http.StatusUnauthorized, "invalid credentials")
		default:
			httputil.WriteInternalError(w, h.logger, err, "failed to log in")
		}
		return
	}

	httputil.WriteJSON(w, h.logger, http.StatusOK, payload.LoginResponse{
		Message: "Login successful",
		User:    user,
	})
}
