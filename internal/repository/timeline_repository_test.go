package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/a-epstein/microblog/internal/model"
	"github.com/a-epstein/microblog/internal/repository"
)

func insertPost(t *testing.T, db *gorm.DB, authorID uint, body string, createdAt time.Time) *model.Post {
	t.Helper()

	post := &model.Post{UserID: authorID, Body: body, CreatedAt: createdAt}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestTimelineOrderingWithTies(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewTimelineRepository(db)
	alice := insertUser(t, db, "alice")

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p1 := insertPost(t, db, alice.ID, "p1", base.Add(10*time.Second))
	p2 := insertPost(t, db, alice.ID, "p2", base.Add(20*time.Second))
	p3 := insertPost(t, db, alice.ID, "p3", base.Add(20*time.Second))

	require.NoError(t, repo.FanOut(p1.ID, []uint{alice.ID}))
	require.NoError(t, repo.FanOut(p2.ID, []uint{alice.ID}))
	require.NoError(t, repo.FanOut(p3.ID, []uint{alice.ID}))

	// equal timestamps break by id descending; repeated reads agree
	for i := 0; i < 3; i++ {
		posts, err := repo.ListPosts(alice.ID, 0)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "p3", posts[0].Body)
		assert.Equal(t, "p2", posts[1].Body)
		assert.Equal(t, "p1", posts[2].Body)
	}
}

func TestFanOutIgnoresDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewTimelineRepository(db)
	alice := insertUser(t, db, "alice")
	bob := insertUser(t, db, "bob")

	post := insertPost(t, db, alice.ID, "hello", time.Now().UTC())
	require.NoError(t, repo.FanOut(post.ID, []uint{alice.ID, bob.ID}))
	require.NoError(t, repo.FanOut(post.ID, []uint{alice.ID, bob.ID}))

	var entries int64
	require.NoError(t, db.Model(&model.TimelineEntry{}).Count(&entries).Error)
	assert.Equal(t, int64(2), entries)
}

func TestBackfillCoversExistingPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewTimelineRepository(db)
	alice := insertUser(t, db, "alice")
	bob := insertUser(t, db, "bob")

	base := time.Now().UTC()
	insertPost(t, db, alice.ID, "old1", base.Add(-2*time.Minute))
	insertPost(t, db, alice.ID, "old2", base.Add(-1*time.Minute))

	require.NoError(t, repo.Backfill(bob.ID, alice.ID))
	// running backfill twice changes nothing
	require.NoError(t, repo.Backfill(bob.ID, alice.ID))

	posts, err := repo.ListPosts(bob.ID, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "old2", posts[0].Body)
	assert.Equal(t, "old1", posts[1].Body)
}
