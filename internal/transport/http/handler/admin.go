package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Alisacalm/Yatube/internal/app"
	"github.com/Alisacalm/Yatube/internal/pagination"
	"github.com/Alisacalm/Yatube/internal/pkg/jwtutil"
	"github.com/Alisacalm/Yatube/internal/transport/http/response"
)

// AdminHandler exposes the administrative JSON API: the only interface
// through which posts and comments are deleted and groups are created.
type AdminHandler struct {
	admin         *app.AdminService
	jwtSecret     string
	jwtExpiration time.Duration
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

func NewAdminHandler(admin *app.AdminService, jwtSecret string, jwtExpiration time.Duration) *AdminHandler {
	return &AdminHandler{
		admin:         admin,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Login exchanges staff credentials for a bearer token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := h.admin.Authenticate(req.Username, req.Password)
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		return
	case errors.Is(err, app.ErrInvalidCredential):
		response.Error(c, http.StatusUnauthorized, response.CodeInvalidCredentials, err.Error())
		return
	case errors.Is(err, app.ErrNotStaff):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "admin login failed")
		return
	}

	token, err := jwtutil.GenerateToken(h.jwtSecret, h.jwtExpiration, user.ID, user.Username, user.IsStaff)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "admin login failed")
		return
	}
	response.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// ListPosts mirrors the admin changelist: paginated, searchable by text,
// filterable by author and group.
func (h *AdminHandler) ListPosts(c *gin.Context) {
	page, err := h.admin.ListPosts(app.AdminPostQuery{
		Search:   c.Query("search"),
		AuthorID: parseOptionalID(c.Query("author")),
		GroupID:  parseOptionalID(c.Query("group")),
		Page:     pagination.ParseNumber(c.Query("page")),
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list posts failed")
		return
	}
	response.OK(c, gin.H{
		"posts":       page.Items,
		"page":        page.Number,
		"total_pages": page.TotalPages,
		"total_items": page.TotalItems,
	})
}

func (h *AdminHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid post id")
		return
	}

	err := h.admin.DeletePost(id)
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case err != nil:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete post failed")
	default:
		response.OK(c, nil)
	}
}

func (h *AdminHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid comment id")
		return
	}

	err := h.admin.DeleteComment(id)
	switch {
	case errors.Is(err, app.ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case err != nil:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete comment failed")
	default:
		response.OK(c, nil)
	}
}

func (h *AdminHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	group, err := h.admin.CreateGroup(app.CreateGroupInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	})
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "title and a url-safe slug are required")
		return
	case errors.Is(err, app.ErrSlugExists):
		response.Error(c, http.StatusBadRequest, response.CodeSlugExists, err.Error())
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create group failed")
		return
	}
	response.OK(c, group)
}
