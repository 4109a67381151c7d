package model

import "time"

// Follow is a directed edge: the follower receives the followed user's posts
// in their home timeline. The pair is the natural key; the composite primary
// key makes duplicate edges impossible at the storage level.
type Follow struct {
	FollowerID uint      `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FollowedID uint      `gorm:"primaryKey;autoIncrement:false" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}
