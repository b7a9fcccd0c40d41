package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Alisacalm/Yatube/internal/transport/http/middleware"
)

// pageData merges per-page context with the fields every template expects.
func pageData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{
		"CurrentUser": middleware.CurrentUser(c),
		"Path":        c.Request.URL.Path,
	}
	for key, value := range extra {
		data[key] = value
	}
	return data
}

// RenderNotFound serves the custom 404 page. It also backs the router's
// NoRoute handler.
func RenderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", pageData(c, nil))
	c.Abort()
}

func renderServerError(c *gin.Context, err error) {
	log.Printf("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.HTML(http.StatusInternalServerError, "500.html", pageData(c, nil))
	c.Abort()
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parseOptionalID(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
