package app

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/a-epstein/microblog/internal/model"
	"github.com/a-epstein/microblog/internal/repository"
)

const maxBodyRunes = 140

var (
	ErrBodyEmpty   = errors.New("post body is empty")
	ErrBodyTooLong = errors.New("post body exceeds 140 characters")
)

type PostService struct {
	userRepo     *repository.UserRepository
	postRepo     *repository.PostRepository
	followRepo   *repository.FollowRepository
	timelineRepo *repository.TimelineRepository
	cache        TimelineCache
}

type CreatePostInput struct {
	AuthorID uint
	Body     string
}

func NewPostService(
	userRepo *repository.UserRepository,
	postRepo *repository.PostRepository,
	followRepo *repository.FollowRepository,
	timelineRepo *repository.TimelineRepository,
	cache TimelineCache,
) *PostService {
	return &PostService{
		userRepo:     userRepo,
		postRepo:     postRepo,
		followRepo:   followRepo,
		timelineRepo: timelineRepo,
		cache:        cache,
	}
}

// Create validates and persists the post, then fans it out synchronously to
// the author's own timeline and every current follower's. The creation
// timestamp is set here, never taken from the caller, so feed order cannot be
// manipulated.
func (s *PostService) Create(input CreatePostInput) (*model.Post, error) {
	if input.AuthorID == 0 {
		return nil, ErrInvalidInput
	}

	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, ErrBodyEmpty
	}
	if utf8.RuneCountInString(body) > maxBodyRunes {
		return nil, ErrBodyTooLong
	}

	post := &model.Post{
		UserID:    input.AuthorID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	followerIDs, err := s.followRepo.ListFollowerIDs(input.AuthorID)
	if err != nil {
		return nil, err
	}
	recipients := append(followerIDs, input.AuthorID)
	if err := s.timelineRepo.FanOut(post.ID, recipients); err != nil {
		return nil, err
	}

	s.invalidateTimelines(recipients)
	return post, nil
}

func (s *PostService) ListByAuthor(username string, limit int) ([]model.Post, error) {
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
	return s.postRepo.ListByAuthor(user.ID, limit)
}

func (s *PostService) invalidateTimelines(userIDs []uint) {
	if s.cache == nil {
		return
	}
	ctx := context.Background()
	for _, id := range userIDs {
		_ = s.cache.MarkDirty(ctx, id)
		_ = s.cache.Delete(ctx, id)
	}
}
