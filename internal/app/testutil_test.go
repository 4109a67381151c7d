package app_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/a-epstein/microblog/internal/app"
	"github.com/a-epstein/microblog/internal/model"
	"github.com/a-epstein/microblog/internal/repository"
)

const testJWTSecret = "test-secret"

type services struct {
	db       *gorm.DB
	auth     *app.AuthService
	profile  *app.ProfileService
	graph    *app.GraphService
	post     *app.PostService
	timeline *app.TimelineService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "microblog_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Follow{},
		&model.TimelineEntry{},
	))
	return db
}

func newServices(t *testing.T) *services {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)
	timelineRepo := repository.NewTimelineRepository(db)

	return &services{
		db:       db,
		auth:     app.NewAuthService(userRepo, testJWTSecret, time.Hour),
		profile:  app.NewProfileService(userRepo, postRepo, followRepo),
		graph:    app.NewGraphService(userRepo, followRepo, timelineRepo, nil),
		post:     app.NewPostService(userRepo, postRepo, followRepo, timelineRepo, nil),
		timeline: app.NewTimelineService(timelineRepo, nil),
	}
}

func (s *services) register(t *testing.T, username, email string) *model.User {
	t.Helper()

	result, err := s.auth.Register(app.RegisterInput{
		Username: username,
		Email:    email,
		Password: "password1",
	})
	require.NoError(t, err)
	return result.User
}

func (s *services) createPost(t *testing.T, authorID uint, body string) *model.Post {
	t.Helper()

	post, err := s.post.Create(app.CreatePostInput{AuthorID: authorID, Body: body})
	require.NoError(t, err)
	return post
}

func timelineBodies(t *testing.T, s *services, userID uint) []string {
	t.Helper()

	posts, err := s.timeline.Home(userID, 0)
	require.NoError(t, err)
	bodies := make([]string, 0, len(posts))
	for _, p := range posts {
		bodies = append(bodies, p.Body)
	}
	return bodies
}
