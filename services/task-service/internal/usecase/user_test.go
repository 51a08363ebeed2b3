package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/repository"
)

type fakeUserRepo struct {
	users map[string]model.User
	err   error
}

func (f *fakeUserRepo) UpsertUser(_ context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[user.UID] = *user
	return nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, uid string, params repository.UpdateProfileParams) error {
	if f.err != nil {
		return f.err
	}
	user, ok := f.users[uid]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Name = params.Name
	user.Email = params.Email
	f.users[uid] = user
	return nil
}

func TestRegisterUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]model.User{}}
	u := NewUserUsecase(repo)

	user, err := u.RegisterUser(context.Background(), RegisterUserParams{UID: "u1", Name: "Ann", Email: "ann@b.com"})
	require.NoError(t, err)
	assert.Equal(t, &model.User{UID: "u1", Name: "Ann", Email: "ann@b.com"}, user)
	assert.Equal(t, *user, repo.users["u1"])

	// Registering again overwrites without an email uniqueness check.
	_, err = u.RegisterUser(context.Background(), RegisterUserParams{UID: "u1", Name: "Anne", Email: "ann@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "Anne", repo.users["u1"].Name)
}

func TestRegisterUser_Errors(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]model.User{}}
	u := NewUserUsecase(repo)

	_, err := u.RegisterUser(context.Background(), RegisterUserParams{UID: "u1", Name: "Ann"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.err = errors.New("write failed")
	_, err = u.RegisterUser(context.Background(), RegisterUserParams{UID: "u1", Name: "Ann", Email: "a@b.com"})
	assert.ErrorIs(t, err, repo.err)
}

func TestEditProfile(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]model.User{
		"u1": {UID: "u1", Name: "Ann", Email: "ann@b.com"},
	}}
	u := NewUserUsecase(repo)

	err := u.EditProfile(context.Background(), EditProfileParams{UID: "u1", Name: "Ann B", Email: "annb@b.com"})
	require.NoError(t, err)
	assert.Equal(t, model.User{UID: "u1", Name: "Ann B", Email: "annb@b.com"}, repo.users["u1"])
}

func TestEditProfile_Errors(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]model.User{}}
	u := NewUserUsecase(repo)

	err := u.EditProfile(context.Background(), EditProfileParams{UID: "u1", Name: "Ann"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = u.EditProfile(context.Background(), EditProfileParams{UID: "missing", Name: "Ann", Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	repo.err = errors.New("write failed")
	err = u.EditProfile(context.Background(), EditProfileParams{UID: "u1", Name: "Ann", Email: "a@b.com"})
	assert.ErrorIs(t, err, repo.err)
}
