package model

import "time"

// TimelineEntry materializes one post's membership in one user's home
// timeline. Entries are written when a post fans out to its author and
// followers, and when a new follow backfills the target's existing posts.
// Unfollowing leaves entries in place, so the feed never loses posts it
// already showed.
type TimelineEntry struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
