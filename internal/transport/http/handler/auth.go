package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Alisacalm/Yatube/internal/app"
	"github.com/Alisacalm/Yatube/internal/session"
)

type AuthHandler struct {
	auth     *app.AuthService
	sessions *session.Store
}

func NewAuthHandler(auth *app.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", pageData(c, gin.H{"Username": ""}))
}

// Signup registers a user and logs them straight in.
func (h *AuthHandler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.auth.Signup(app.SignupInput{Username: username, Password: password})
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		c.HTML(http.StatusOK, "signup.html", pageData(c, gin.H{
			"Username": username,
			"Error":    "Username is required and the password must be at least 8 characters.",
		}))
		return
	case errors.Is(err, app.ErrUsernameExists):
		c.HTML(http.StatusOK, "signup.html", pageData(c, gin.H{
			"Username": username,
			"Error":    "This username is already taken.",
		}))
		return
	case err != nil:
		renderServerError(c, err)
		return
	}

	if err := h.openSession(c, user.ID); err != nil {
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(c, gin.H{
		"Username": "",
		"Next":     c.Query("next"),
	}))
}

// Login checks credentials, opens a session and honors the next parameter.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	next := c.PostForm("next")

	user, err := h.auth.Login(app.LoginInput{Username: username, Password: c.PostForm("password")})
	if errors.Is(err, app.ErrInvalidInput) || errors.Is(err, app.ErrInvalidCredential) {
		c.HTML(http.StatusOK, "login.html", pageData(c, gin.H{
			"Username": username,
			"Next":     next,
			"Error":    "Invalid username or password.",
		}))
		return
	}
	if err != nil {
		renderServerError(c, err)
		return
	}

	if err := h.openSession(c, user.ID); err != nil {
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, safeNext(next))
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		_ = h.sessions.Destroy(c.Request.Context(), token)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) openSession(c *gin.Context, userID uint) error {
	token, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	c.SetCookie(session.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	return nil
}

// safeNext only allows same-site relative redirect targets.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
