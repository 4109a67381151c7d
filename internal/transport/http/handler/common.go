package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/a-epstein/microblog/internal/model"
	"github.com/a-epstein/microblog/internal/transport/http/middleware"
)

const avatarSize = 128

func getUserIDFromContext(c *gin.Context) (uint, bool) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := userIDAny.(uint)
	return userID, ok
}

func userView(u *model.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"about_me":   u.AboutMe,
		"last_seen":  u.LastSeen,
		"avatar_url": u.AvatarURL(avatarSize),
	}
}

func userViews(users []model.User) []gin.H {
	views := make([]gin.H, 0, len(users))
	for i := range users {
		views = append(views, userView(&users[i]))
	}
	return views
}
