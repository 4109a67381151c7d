package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-epstein/microblog/internal/app"
)

func TestRegisterAndLogin(t *testing.T) {
	s := newServices(t)

	result, err := s.auth.Register(app.RegisterInput{
		Username: "alice",
		Email:    "A@X.com",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.NotZero(t, result.User.ID)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "a@x.com", result.User.Email, "email is stored lowercased")
	assert.NotEqual(t, "password1", result.User.PasswordHash)
	assert.NotContains(t, result.User.PasswordHash, "password1")

	login, err := s.auth.Login(app.LoginInput{Username: "alice", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := newServices(t)
	s.register(t, "alice", "a@x.com")

	_, err := s.auth.Register(app.RegisterInput{
		Username: "alice",
		Email:    "other@x.com",
		Password: "password1",
	})
	assert.ErrorIs(t, err, app.ErrUsernameExists)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newServices(t)
	s.register(t, "alice", "a@x.com")

	_, err := s.auth.Register(app.RegisterInput{
		Username: "someone",
		Email:    "a@x.com",
		Password: "password1",
	})
	assert.ErrorIs(t, err, app.ErrEmailExists)
}

func TestLoginDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	s := newServices(t)
	s.register(t, "alice", "a@x.com")

	_, unknownUserErr := s.auth.Login(app.LoginInput{Username: "nobody", Password: "password1"})
	_, wrongPasswordErr := s.auth.Login(app.LoginInput{Username: "alice", Password: "wrongpass1"})

	assert.ErrorIs(t, unknownUserErr, app.ErrInvalidCredential)
	assert.ErrorIs(t, wrongPasswordErr, app.ErrInvalidCredential)
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	s := newServices(t)

	_, err := s.auth.Register(app.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw1",
	})
	assert.ErrorIs(t, err, app.ErrInvalidInput)
}
