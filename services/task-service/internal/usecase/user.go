package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/repository"
)

// UserUsecase defines profile operations.
type UserUsecase interface {
	RegisterUser(ctx context.Context, params RegisterUserParams) (*model.User, error)
	EditProfile(ctx context.Context, params EditProfileParams) error
}

// RegisterUserParams defines the parameters for registering a profile.
type RegisterUserParams struct {
	UID   string
	Name  string
	Email string
}

// EditProfileParams defines the parameters for editing a profile.
// Name and Email are always written together.
type EditProfileParams struct {
	UID   string
	Name  string
	Email string
}

var ErrUserNotFound = errors.New("user not found")

type userUsecase struct {
	userRepo repository.UserRepository
}

func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) RegisterUser(ctx context.Context, params RegisterUserParams) (*model.User, error) {
	if params.UID == "" || params.Name == "" || params.Email == "" {
		return nil, fmt.Errorf("%w: uid, name, and email are required", ErrInvalidInput)
	}

	user := &model.User{
		UID:   params.UID,
		Name:  params.Name,
		Email: params.Email,
	}

	if err := u.userRepo.UpsertUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *userUsecase) EditProfile(ctx context.Context, params EditProfileParams) error {
	if params.UID == "" || params.Name == "" || params.Email == "" {
		return fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}

	err := u.userRepo.UpdateProfile(ctx, params.UID, repository.UpdateProfileParams{
		Name:  params.Name,
		Email: params.Email,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}

		return err
	}

	return nil
}
