package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-epstein/microblog/internal/app"
	"github.com/a-epstein/microblog/internal/model"
)

func TestFollowCreatesEdge(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice", "a@x.com")
	bob := s.register(t, "bob", "b@x.com")

	_, err := s.graph.Follow(alice.ID, "bob")
	require.NoError(t, err)

	following, err := s.graph.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	followed, err := s.graph.Following("alice")
	require.NoError(t, err)
	require.Len(t, followed, 1)
	assert.Equal(t, "bob", followed[0].Username)

	followers, err := s.graph.Followers("bob")
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "alice", followers[0].Username)
}

func TestFollowIsIdempotent(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice", "a@x.com")
	s.register(t, "bob", "b@x.com")

	_, err := s.graph.Follow(alice.ID, "bob")
	require.NoError(t, err)
	_, err = s.graph.Follow(alice.ID, "bob")
	require.NoError(t, err)

	var edges int64
	require.NoError(t, s.db.Model(&model.Follow{}).Count(&edges).Error)
	assert.Equal(t, int64(1), edges)
}

func TestUnfollowIsInverseAndIdempotent(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice", "a@x.com")
	bob := s.register(t, "bob", "b@x.com")

	_, err := s.graph.Follow(alice.ID, "bob")
	require.NoError(t, err)
	_, err = s.graph.Unfollow(alice.ID, "bob")
	require.NoError(t, err)

	following, err := s.graph.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	// unfollowing again is a no-op
	_, err = s.graph.Unfollow(alice.ID, "bob")
	require.NoError(t, err)

	var edges int64
	require.NoError(t, s.db.Model(&model.Follow{}).Count(&edges).Error)
	assert.Equal(t, int64(0), edges)
}

func TestSelfFollowIsRejected(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice", "a@x.com")

	_, err := s.graph.Follow(alice.ID, "alice")
	assert.ErrorIs(t, err, app.ErrSelfFollow)

	following, err := s.graph.IsFollowing(alice.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowUnknownUser(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice", "a@x.com")

	_, err := s.graph.Follow(alice.ID, "nobody")
	assert.ErrorIs(t, err, app.ErrUserNotFound)

	_, err = s.graph.Unfollow(alice.ID, "nobody")
	assert.ErrorIs(t, err, app.ErrUserNotFound)
}
