package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a-epstein/microblog/internal/app"
	"github.com/a-epstein/microblog/internal/transport/http/response"
)

type ProfileHandler struct {
	profileService *app.ProfileService
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	AboutMe  string `json:"about_me" binding:"max=140"`
}

func NewProfileHandler(profileService *app.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	viewerID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	profile, err := h.profileService.GetProfile(viewerID, c.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "get profile failed")
		}
		return
	}

	response.OK(c, gin.H{
		"user":            userView(profile.User),
		"posts":           profile.Posts,
		"post_count":      profile.PostCount,
		"follower_count":  profile.FollowerCount,
		"following_count": profile.FollowingCount,
		"viewer_follows":  profile.ViewerFollows,
	})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := h.profileService.UpdateProfile(app.UpdateProfileInput{
		UserID:   userID,
		Username: req.Username,
		AboutMe:  req.AboutMe,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput), errors.Is(err, app.ErrAboutMeTooLong):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrUsernameExists):
			response.Error(c, http.StatusBadRequest, response.CodeUsernameExists, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "update profile failed")
		}
		return
	}

	response.OK(c, userView(user))
}
