package middleware

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/a-epstein/microblog/internal/model"
)

type SeenPublisher interface {
	Publish(ctx context.Context, event model.SeenEvent) error
}

// TouchLastSeen emits one seen event per authenticated request. The update
// itself happens in the seen-persist worker; a publish failure is logged and
// the request proceeds, last-seen is best effort.
func TouchLastSeen(publisher SeenPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if publisher != nil {
			if userID, ok := c.Get(ContextUserIDKey); ok {
				if id, isUint := userID.(uint); isUint && id != 0 {
					event := model.SeenEvent{UserID: id, SeenAt: time.Now().UTC()}
					if err := publisher.Publish(c.Request.Context(), event); err != nil {
						log.Printf("publish seen event failed: %v", err)
					}
				}
			}
		}
		c.Next()
	}
}
