package app

import (
	"context"

	"github.com/a-epstein/microblog/internal/model"
	"github.com/a-epstein/microblog/internal/repository"
)

// TimelineCache fronts the materialized timeline with a short-lived cached
// copy. A dirty marker set during writes keeps a concurrent read from
// repopulating the cache with a mid-write snapshot.
type TimelineCache interface {
	Get(ctx context.Context, userID uint) ([]model.Post, bool, error)
	Set(ctx context.Context, userID uint, posts []model.Post) error
	Delete(ctx context.Context, userID uint) error
	MarkDirty(ctx context.Context, userID uint) error
	IsDirty(ctx context.Context, userID uint) (bool, error)
}

// timelineFetchLimit is the cache window: the repository is always asked for
// this many posts before caching, so a request with a small limit can never
// populate the cache with a truncated snapshot.
const timelineFetchLimit = 200

type TimelineService struct {
	timelineRepo *repository.TimelineRepository
	cache        TimelineCache
}

func NewTimelineService(timelineRepo *repository.TimelineRepository, cache TimelineCache) *TimelineService {
	return &TimelineService{
		timelineRepo: timelineRepo,
		cache:        cache,
	}
}

// Home returns the user's feed: their own posts plus posts that fanned out
// from followed authors, newest first. Empty when the user has no posts and
// follows no one; that is not an error.
func (s *TimelineService) Home(userID uint, limit int) ([]model.Post, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	if limit <= 0 || limit > timelineFetchLimit {
		limit = 50
	}

	ctx := context.Background()
	if s.cache != nil {
		dirty, err := s.cache.IsDirty(ctx, userID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.cache.Get(ctx, userID); cacheErr == nil && hit {
				return trimPosts(cached, limit), nil
			}
		}
	}

	posts, err := s.timelineRepo.ListPosts(userID, timelineFetchLimit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if dirty, dirtyErr := s.cache.IsDirty(ctx, userID); dirtyErr == nil && !dirty {
			_ = s.cache.Set(ctx, userID, posts)
		}
	}
	return trimPosts(posts, limit), nil
}

func trimPosts(posts []model.Post, limit int) []model.Post {
	if limit <= 0 || limit >= len(posts) {
		return posts
	}
	return posts[:limit]
}
