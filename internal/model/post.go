package model

import "time"

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Body      string    `gorm:"size:140;not null" json:"body"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
