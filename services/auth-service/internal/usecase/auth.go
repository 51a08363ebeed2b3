package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/task-tracker-api/services/auth-service/internal/model"
	"github.com/vasapolrittideah/task-tracker-api/services/auth-service/internal/repository"
	"github.com/vasapolrittideah/task-tracker-api/shared/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Signup(ctx context.Context, params SignupParams) (*model.User, error)
	Login(ctx context.Context, params LoginParams) (*model.User, error)
}

// SignupParams defines the parameters for user signup.
type SignupParams struct {
	Email    string
	Username string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type authUsecase struct {
	userRepo     repository.UserRepository
	hashPassword func(password string) (string, error)
}

func NewAuthUsecase(userRepo repository.UserRepository) AuthUsecase {
	return &authUsecase{
		userRepo:     userRepo,
		hashPassword: security.HashPassword,
	}
}

func (u *authUsecase) Signup(ctx context.Context, params SignupParams) (*model.User, error) {
	_, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	switch {
	case err == nil:
		return nil, ErrUserAlreadyExists
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	passwordHash, err := u.hashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Email:        params.Email,
		Username:     params.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		// Lost a race with a concurrent signup for the same email.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*model.User, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
