package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/a-epstein/microblog/internal/model"
)

type TimelineRepository struct {
	db *gorm.DB
}

func NewTimelineRepository(db *gorm.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// FanOut records one timeline entry per recipient for a freshly created
// post. The conflict clause makes overlapping fan-outs harmless.
func (r *TimelineRepository) FanOut(postID uint, recipientIDs []uint) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	entries := make([]model.TimelineEntry, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		entries = append(entries, model.TimelineEntry{UserID: id, PostID: postID})
	}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries).Error
	if err != nil {
		return fmt.Errorf("fan out timeline entries failed: %w", err)
	}
	return nil
}

// Backfill inserts entries for all of the author's existing posts into one
// user's timeline. Used when a follow edge is created, so the new follower
// sees posts that predate the follow. Re-follows hit the conflict clause and
// change nothing.
func (r *TimelineRepository) Backfill(userID, authorID uint) error {
	var postIDs []uint
	err := r.db.Model(&model.Post{}).
		Where("user_id = ?", authorID).
		Pluck("id", &postIDs).Error
	if err != nil {
		return fmt.Errorf("query author posts for backfill failed: %w", err)
	}
	if len(postIDs) == 0 {
		return nil
	}

	entries := make([]model.TimelineEntry, 0, len(postIDs))
	for _, id := range postIDs {
		entries = append(entries, model.TimelineEntry{UserID: userID, PostID: id})
	}
	err = r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries).Error
	if err != nil {
		return fmt.Errorf("backfill timeline entries failed: %w", err)
	}
	return nil
}

// ListPosts returns the user's home timeline, newest first. Equal timestamps
// are broken by post id descending so the order is stable across calls.
func (r *TimelineRepository) ListPosts(userID uint, limit int) ([]model.Post, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var posts []model.Post
	err := r.db.Model(&model.Post{}).
		Joins("JOIN timeline_entries ON timeline_entries.post_id = posts.id").
		Where("timeline_entries.user_id = ?", userID).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list timeline posts failed: %w", err)
	}
	return posts, nil
}
