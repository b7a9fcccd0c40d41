package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alisacalm/Yatube/internal/app"
	"github.com/Alisacalm/Yatube/internal/model"
	"github.com/Alisacalm/Yatube/internal/pagination"
	"github.com/Alisacalm/Yatube/internal/transport/http/middleware"
)

type PostHandler struct {
	posts *app.PostService
}

// postForm carries submitted values and field errors back into the
// create/edit template.
type postForm struct {
	Text    string
	GroupID string
	Errors  map[string]string
}

func NewPostHandler(posts *app.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// Index renders the main feed.
func (h *PostHandler) Index(c *gin.Context) {
	page, err := h.posts.FeedPage(pagination.ParseNumber(c.Query("page")))
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", pageData(c, gin.H{"Page": page}))
}

// GroupPosts renders a group's feed, looked up by slug.
func (h *PostHandler) GroupPosts(c *gin.Context) {
	group, page, err := h.posts.GroupFeed(c.Param("slug"), pagination.ParseNumber(c.Query("page")))
	if errors.Is(err, app.ErrGroupNotFound) {
		RenderNotFound(c)
		return
	}
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "group_list.html", pageData(c, gin.H{"Group": group, "Page": page}))
}

// Profile renders a user's feed with follow state for the viewer.
func (h *PostHandler) Profile(c *gin.Context) {
	var viewerID uint
	if user := middleware.CurrentUser(c); user != nil {
		viewerID = user.ID
	}

	info, page, err := h.posts.ProfileFeed(c.Param("username"), pagination.ParseNumber(c.Query("page")), viewerID)
	if errors.Is(err, app.ErrUserNotFound) {
		RenderNotFound(c)
		return
	}
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "profile.html", pageData(c, gin.H{
		"Author":    info.Author,
		"PostCount": info.PostCount,
		"Following": info.Following,
		"Page":      page,
	}))
}

// Detail renders a single post with its comments and the comment form.
func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		RenderNotFound(c)
		return
	}
	h.renderDetail(c, id, "")
}

// AddComment persists a comment and returns to the post detail page.
func (h *PostHandler) AddComment(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		RenderNotFound(c)
		return
	}
	user := middleware.CurrentUser(c)

	_, err := h.posts.AddComment(id, user.ID, c.PostForm("text"))
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		RenderNotFound(c)
	case errors.Is(err, app.ErrTextEmpty):
		h.renderDetail(c, id, "Comment text must not be empty.")
	case err != nil:
		renderServerError(c, err)
	default:
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
	}
}

// ShowCreate renders an empty post form.
func (h *PostHandler) ShowCreate(c *gin.Context) {
	h.renderPostForm(c, postForm{}, nil, http.StatusOK)
}

// Create validates the submitted form and persists a new post. On success
// the author lands on their own profile.
func (h *PostHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	form := postForm{
		Text:    c.PostForm("text"),
		GroupID: c.PostForm("group"),
		Errors:  map[string]string{},
	}

	imageName, image, closeImage, err := openUpload(c)
	if err != nil {
		renderServerError(c, err)
		return
	}
	defer closeImage()

	_, err = h.posts.Create(app.CreatePostInput{
		AuthorID:  user.ID,
		Text:      form.Text,
		GroupID:   parseOptionalID(form.GroupID),
		ImageName: imageName,
		Image:     image,
	})
	switch {
	case errors.Is(err, app.ErrTextEmpty):
		form.Errors["Text"] = "This field is required."
		h.renderPostForm(c, form, nil, http.StatusOK)
	case errors.Is(err, app.ErrGroupNotFound):
		form.Errors["Group"] = "Choose a valid group."
		h.renderPostForm(c, form, nil, http.StatusOK)
	case err != nil:
		renderServerError(c, err)
	default:
		c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
	}
}

// ShowEdit renders the post form prefilled with the post being edited.
// Non-authors are bounced to the post detail page without changes.
func (h *PostHandler) ShowEdit(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		RenderNotFound(c)
		return
	}

	post, _, err := h.posts.Detail(id)
	if errors.Is(err, app.ErrPostNotFound) {
		RenderNotFound(c)
		return
	}
	if err != nil {
		renderServerError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
		return
	}

	form := postForm{Text: post.Text}
	if post.GroupID != nil {
		form.GroupID = fmt.Sprintf("%d", *post.GroupID)
	}
	h.renderPostForm(c, form, post, http.StatusOK)
}

// Edit applies the submitted form to an existing post, author-only.
func (h *PostHandler) Edit(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		RenderNotFound(c)
		return
	}
	user := middleware.CurrentUser(c)
	form := postForm{
		Text:    c.PostForm("text"),
		GroupID: c.PostForm("group"),
		Errors:  map[string]string{},
	}

	imageName, image, closeImage, err := openUpload(c)
	if err != nil {
		renderServerError(c, err)
		return
	}
	defer closeImage()

	post, err := h.posts.Edit(app.EditPostInput{
		PostID:    id,
		EditorID:  user.ID,
		Text:      form.Text,
		GroupID:   parseOptionalID(form.GroupID),
		ImageName: imageName,
		Image:     image,
	})
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		RenderNotFound(c)
	case errors.Is(err, app.ErrNotAuthor):
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
	case errors.Is(err, app.ErrTextEmpty):
		form.Errors["Text"] = "This field is required."
		h.renderPostForm(c, form, nil, http.StatusOK)
	case errors.Is(err, app.ErrGroupNotFound):
		form.Errors["Group"] = "Choose a valid group."
		h.renderPostForm(c, form, nil, http.StatusOK)
	case err != nil:
		renderServerError(c, err)
	default:
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
	}
}

func (h *PostHandler) renderDetail(c *gin.Context, id uint, commentError string) {
	post, comments, err := h.posts.Detail(id)
	if errors.Is(err, app.ErrPostNotFound) {
		RenderNotFound(c)
		return
	}
	if err != nil {
		renderServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "post_detail.html", pageData(c, gin.H{
		"Post":         post,
		"Comments":     comments,
		"CommentError": commentError,
	}))
}

func (h *PostHandler) renderPostForm(c *gin.Context, form postForm, post *model.Post, status int) {
	groups, err := h.posts.Groups()
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.HTML(status, "create_post.html", pageData(c, gin.H{
		"Form":   form,
		"Groups": groups,
		"Post":   post,
		"IsEdit": post != nil,
	}))
}

// openUpload fetches the optional image field of a multipart form. The
// returned closer is always safe to defer.
func openUpload(c *gin.Context) (string, io.Reader, func(), error) {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return "", nil, func() {}, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, func() {}, fmt.Errorf("open uploaded image failed: %w", err)
	}
	return fileHeader.Filename, file, func() { _ = file.Close() }, nil
}
