package app

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/a-epstein/microblog/internal/model"
	"github.com/a-epstein/microblog/internal/repository"
)

const maxAboutMeRunes = 140

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrAboutMeTooLong = errors.New("about me exceeds 140 characters")
)

type ProfileService struct {
	userRepo   *repository.UserRepository
	postRepo   *repository.PostRepository
	followRepo *repository.FollowRepository
}

type UpdateProfileInput struct {
	UserID   uint
	Username string
	AboutMe  string
}

type Profile struct {
	User           *model.User
	Posts          []model.Post
	PostCount      int64
	FollowerCount  int64
	FollowingCount int64
	ViewerFollows  bool
}

func NewProfileService(
	userRepo *repository.UserRepository,
	postRepo *repository.PostRepository,
	followRepo *repository.FollowRepository,
) *ProfileService {
	return &ProfileService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

// UpdateProfile renames the user and replaces the about-me text. The user's
// own current username is exempt from the collision check, so submitting the
// form unchanged always succeeds.
func (s *ProfileService) UpdateProfile(input UpdateProfileInput) (*model.User, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}

	username := strings.TrimSpace(input.Username)
	aboutMe := strings.TrimSpace(input.AboutMe)
	if username == "" {
		return nil, ErrInvalidInput
	}
	if utf8.RuneCountInString(aboutMe) > maxAboutMeRunes {
		return nil, ErrAboutMeTooLong
	}

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if username != user.Username {
		existing, err := s.userRepo.GetByUsername(username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrUsernameExists
		}
	}

	if err := s.userRepo.UpdateProfile(user.ID, username, aboutMe); err != nil {
		return nil, err
	}
	user.Username = username
	user.AboutMe = aboutMe
	return user, nil
}

func (s *ProfileService) GetProfile(viewerID uint, username string) (*Profile, error) {
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

	posts, err := s.postRepo.ListByAuthor(user.ID, 0)
	if err != nil {
		return nil, err
	}
	postCount, err := s.postRepo.CountByAuthor(user.ID)
	if err != nil {
		return nil, err
	}
	followerCount, err := s.followRepo.CountFollowers(user.ID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(user.ID)
	if err != nil {
		return nil, err
	}

	viewerFollows := false
	if viewerID != 0 && viewerID != user.ID {
		viewerFollows, err = s.followRepo.Exists(viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &Profile{
		User:           user,
		Posts:          posts,
		PostCount:      postCount,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		ViewerFollows:  viewerFollows,
	}, nil
}
