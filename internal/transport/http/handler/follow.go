package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a-epstein/microblog/internal/app"
	"github.com/a-epstein/microblog/internal/transport/http/response"
)

type FollowHandler struct {
	graphService *app.GraphService
}

func NewFollowHandler(graphService *app.GraphService) *FollowHandler {
	return &FollowHandler{graphService: graphService}
}

func (h *FollowHandler) Follow(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	target, err := h.graphService.Follow(userID, c.Param("username"))
	if err != nil {
		h.writeGraphError(c, err, "follow failed")
		return
	}

	response.OK(c, gin.H{
		"following": true,
		"user":      userView(target),
	})
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	target, err := h.graphService.Unfollow(userID, c.Param("username"))
	if err != nil {
		h.writeGraphError(c, err, "unfollow failed")
		return
	}

	response.OK(c, gin.H{
		"following": false,
		"user":      userView(target),
	})
}

func (h *FollowHandler) Followers(c *gin.Context) {
	users, err := h.graphService.Followers(c.Param("username"))
	if err != nil {
		h.writeGraphError(c, err, "list followers failed")
		return
	}
	response.OK(c, userViews(users))
}

func (h *FollowHandler) Following(c *gin.Context) {
	users, err := h.graphService.Following(c.Param("username"))
	if err != nil {
		h.writeGraphError(c, err, "list following failed")
		return
	}
	response.OK(c, userViews(users))
}

func (h *FollowHandler) writeGraphError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrSelfFollow):
		response.Error(c, http.StatusBadRequest, response.CodeSelfFollow, err.Error())
	case errors.Is(err, app.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, response.CodeUserNotFound, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, fallback)
	}
}
