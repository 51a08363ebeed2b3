package payload

import "github.com/vasapolrittideah/task-tracker-api/services/auth-service/internal/model"

type SignupRequest struct {
	Email    string `json:"user_entered_email"    validate:"required,email"`
	Username string `json:"user_entered_username" validate:"required"`
	Password string `json:"user_entered_password" validate:"required,max=1024"`
}

type LoginRequest struct {
	Email    string `json:"user_entered_email"    validate:"required"`
	Password string `json:"user_entered_password" validate:"required"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}
