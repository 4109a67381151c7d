package app_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-epstein/microblog/internal/app"
)

func TestUpdateProfileRenameCollision(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice", "a@x.com")
	s.register(t, "bob", "b@x.com")

	_, err := s.profile.UpdateProfile(app.UpdateProfileInput{
		UserID:   alice.ID,
		Username: "bob",
	})
	assert.ErrorIs(t, err, app.ErrUsernameExists)
}

func TestUpdateProfileUnchangedUsernameSucceeds(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice", "a@x.com")

	updated, err := s.profile.UpdateProfile(app.UpdateProfileInput{
		UserID:   alice.ID,
		Username: "alice",
		AboutMe:  "just another gopher",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "just another gopher", updated.AboutMe)
}

func TestUpdateProfileRename(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice", "a@x.com")

	updated, err := s.profile.UpdateProfile(app.UpdateProfileInput{
		UserID:   alice.ID,
		Username: "alice2",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)

	profile, err := s.profile.GetProfile(alice.ID, "alice2")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.User.ID)
}

func TestUpdateProfileAboutMeTooLong(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice", "a@x.com")

	_, err := s.profile.UpdateProfile(app.UpdateProfileInput{
		UserID:   alice.ID,
		Username: "alice",
		AboutMe:  strings.Repeat("x", 141),
	})
	assert.ErrorIs(t, err, app.ErrAboutMeTooLong)
}

func TestGetProfile(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice", "a@x.com")
	bob := s.register(t, "bob", "b@x.com")
	s.createPost(t, alice.ID, "hello")

	_, err := s.graph.Follow(bob.ID, "alice")
	require.NoError(t, err)

	profile, err := s.profile.GetProfile(bob.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.PostCount)
	assert.Len(t, profile.Posts, 1)
	assert.Equal(t, int64(1), profile.FollowerCount)
	assert.Equal(t, int64(0), profile.FollowingCount)
	assert.True(t, profile.ViewerFollows)
}

func TestGetProfileUnknownUser(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice", "a@x.com")

	_, err := s.profile.GetProfile(alice.ID, "nobody")
	assert.ErrorIs(t, err, app.ErrUserNotFound)
}
