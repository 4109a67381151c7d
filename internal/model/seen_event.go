package model

import "time"

// SeenEvent is published once per authenticated request and consumed by the
// last-seen worker.
type SeenEvent struct {
	UserID uint      `json:"user_id"`
	SeenAt time.Time `json:"seen_at"`
}
