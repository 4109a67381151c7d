package app

import (
	"context"
	"errors"
	"strings"

	"github.com/a-epstein/microblog/internal/model"
	"github.com/a-epstein/microblog/internal/repository"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

// GraphService owns the directed follower/followed edge set. Self-follow is
// rejected here rather than at the handler, so the invariant holds for every
// caller.
type GraphService struct {
	userRepo     *repository.UserRepository
	followRepo   *repository.FollowRepository
	timelineRepo *repository.TimelineRepository
	cache        TimelineCache
}

func NewGraphService(
	userRepo *repository.UserRepository,
	followRepo *repository.FollowRepository,
	timelineRepo *repository.TimelineRepository,
	cache TimelineCache,
) *GraphService {
	return &GraphService{
		userRepo:     userRepo,
		followRepo:   followRepo,
		timelineRepo: timelineRepo,
		cache:        cache,
	}
}

// Follow creates the edge and backfills the target's existing posts into the
// follower's timeline. Idempotent: following twice leaves the same edge set
// and the same timeline entries.
func (s *GraphService) Follow(followerID uint, targetUsername string) (*model.User, error) {
	target, err := s.resolveTarget(followerID, targetUsername)
	if err != nil {
		return nil, err
	}

	if err := s.followRepo.Create(followerID, target.ID); err != nil {
		return nil, err
	}
	if err := s.timelineRepo.Backfill(followerID, target.ID); err != nil {
		return nil, err
	}
	s.invalidateTimeline(followerID)
	return target, nil
}

// Unfollow removes the edge. Timeline entries written while the edge existed
// are kept; only posts created after the unfollow stop reaching the user.
func (s *GraphService) Unfollow(followerID uint, targetUsername string) (*model.User, error) {
	target, err := s.resolveTarget(followerID, targetUsername)
	if err != nil {
		return nil, err
	}

	if err := s.followRepo.Delete(followerID, target.ID); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *GraphService) IsFollowing(followerID, followedID uint) (bool, error) {
	if followerID == 0 || followedID == 0 {
		return false, ErrInvalidInput
	}
	return s.followRepo.Exists(followerID, followedID)
}

func (s *GraphService) Followers(username string) ([]model.User, error) {
	user, err := s.lookup(username)
	if err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowers(user.ID)
}

func (s *GraphService) Following(username string) ([]model.User, error) {
	user, err := s.lookup(username)
	if err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowing(user.ID)
}

func (s *GraphService) resolveTarget(followerID uint, targetUsername string) (*model.User, error) {
	if followerID == 0 {
		return nil, ErrInvalidInput
	}
	target, err := s.lookup(targetUsername)
	if err != nil {
		return nil, err
	}
	if target.ID == followerID {
		return nil, ErrSelfFollow
	}
	return target, nil
}

func (s *GraphService) lookup(username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidInput
	}
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *GraphService) invalidateTimeline(userID uint) {
	if s.cache == nil {
		return
	}
	ctx := context.Background()
	_ = s.cache.MarkDirty(ctx, userID)
	_ = s.cache.Delete(ctx, userID)
}
