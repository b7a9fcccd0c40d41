package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alisacalm/Yatube/internal/model"
	"github.com/Alisacalm/Yatube/internal/repository"
	"github.com/Alisacalm/Yatube/internal/session"
)

const (
	ContextUserKey = "current_user"

	// LoginPath is where unauthenticated users are sent, with the original
	// path carried in a next parameter.
	LoginPath = "/auth/login/"
)

// Sessions resolves the session cookie to a user and stores it in the
// request context. Requests without a valid session pass through as guests.
func Sessions(store *session.Store, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, ok, err := store.UserID(c.Request.Context(), token)
		if err != nil || !ok {
			c.Next()
			return
		}

		user, err := users.GetByID(userID)
		if err == nil && user != nil {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for guests.
func CurrentUser(c *gin.Context) *model.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}

// LoginRequired redirects guests to the login page, preserving the
// requested path as ?next=.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, LoginPath+"?next="+c.Request.URL.Path)
			c.Abort()
			return
		}
		c.Next()
	}
}
