package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alisacalm/Yatube/internal/app"
	"github.com/Alisacalm/Yatube/internal/pagination"
	"github.com/Alisacalm/Yatube/internal/transport/http/middleware"
)

type FollowHandler struct {
	follows *app.FollowService
	posts   *app.PostService
}

func NewFollowHandler(follows *app.FollowService, posts *app.PostService) *FollowHandler {
	return &FollowHandler{follows: follows, posts: posts}
}

// Follow subscribes the current user to the profile's author and returns
// to that profile.
func (h *FollowHandler) Follow(c *gin.Context) {
	h.mutate(c, h.follows.Follow)
}

// Unfollow removes the subscription and returns to the profile.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	h.mutate(c, h.follows.Unfollow)
}

// FollowIndex renders the personalized feed: posts by followed authors only.
func (h *FollowHandler) FollowIndex(c *gin.Context) {
	user := middleware.CurrentUser(c)
	page, err := h.posts.FollowFeed(user.ID, pagination.ParseNumber(c.Query("page")))
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "follow.html", pageData(c, gin.H{"Page": page}))
}

func (h *FollowHandler) mutate(c *gin.Context, op func(userID uint, username string) error) {
	user := middleware.CurrentUser(c)
	username := c.Param("username")

	err := op(user.ID, username)
	if errors.Is(err, app.ErrUserNotFound) {
		RenderNotFound(c)
		return
	}
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}
