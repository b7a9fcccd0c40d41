package http

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	appsvc "github.com/Alisacalm/Yatube/internal/app"
	"github.com/Alisacalm/Yatube/internal/bootstrap"
	"github.com/Alisacalm/Yatube/internal/repository"
	"github.com/Alisacalm/Yatube/internal/transport/http/handler"
	"github.com/Alisacalm/Yatube/internal/transport/http/middleware"
)

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
}

func NewRouter(app *bootstrap.App) (*gin.Engine, error) {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	templates, err := template.New("").
		Funcs(templateFuncs).
		ParseGlob(filepath.Join(app.Config.Web.TemplatesDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates failed: %w", err)
	}
	router.SetHTMLTemplate(templates)

	router.Static("/static", app.Config.Web.StaticDir)
	router.Static("/media", app.Media.Root())

	userRepo := repository.NewUserRepository(app.DB)
	groupRepo := repository.NewGroupRepository(app.DB)
	postRepo := repository.NewPostRepository(app.DB)
	commentRepo := repository.NewCommentRepository(app.DB)
	followRepo := repository.NewFollowRepository(app.DB)

	authService := appsvc.NewAuthService(userRepo)
	postService := appsvc.NewPostService(
		postRepo, groupRepo, userRepo, commentRepo, followRepo,
		app.Media, app.Config.App.PostsPerPage,
	)
	followService := appsvc.NewFollowService(userRepo, followRepo)
	adminService := appsvc.NewAdminService(
		userRepo, postRepo, commentRepo, groupRepo,
		app.Config.App.PostsPerPage,
	)

	postHandler := handler.NewPostHandler(postService)
	followHandler := handler.NewFollowHandler(followService, postService)
	authHandler := handler.NewAuthHandler(authService, app.Sessions)
	adminHandler := handler.NewAdminHandler(
		adminService,
		app.Config.Admin.JWTSecret,
		time.Duration(app.Config.Admin.JWTExpireMinute)*time.Minute,
	)
	healthHandler := handler.NewHealthHandler(app)

	router.Use(middleware.Sessions(app.Sessions, userRepo))
	loginRequired := middleware.LoginRequired()

	router.GET("/", postHandler.Index)
	router.GET("/group/:slug/", postHandler.GroupPosts)
	router.GET("/profile/:username/", postHandler.Profile)
	router.GET("/profile/:username/follow/", loginRequired, followHandler.Follow)
	router.GET("/profile/:username/unfollow/", loginRequired, followHandler.Unfollow)
	router.GET("/posts/:id/", postHandler.Detail)
	router.POST("/posts/:id/comment/", loginRequired, postHandler.AddComment)
	router.GET("/create/", loginRequired, postHandler.ShowCreate)
	router.POST("/create/", loginRequired, postHandler.Create)
	router.GET("/posts/:id/edit/", loginRequired, postHandler.ShowEdit)
	router.POST("/posts/:id/edit/", loginRequired, postHandler.Edit)
	router.GET("/follow/", loginRequired, followHandler.FollowIndex)

	auth := router.Group("/auth")
	auth.GET("/signup/", authHandler.ShowSignup)
	auth.POST("/signup/", authHandler.Signup)
	auth.GET("/login/", authHandler.ShowLogin)
	auth.POST("/login/", authHandler.Login)
	auth.GET("/logout/", authHandler.Logout)

	admin := router.Group("/api/admin")
	admin.POST("/login", adminHandler.Login)
	adminAuthed := admin.Group("", middleware.AdminJWT(app.Config.Admin.JWTSecret))
	adminAuthed.GET("/posts", adminHandler.ListPosts)
	adminAuthed.DELETE("/posts/:id", adminHandler.DeletePost)
	adminAuthed.DELETE("/comments/:id", adminHandler.DeleteComment)
	adminAuthed.POST("/groups", adminHandler.CreateGroup)

	router.GET("/healthz", healthHandler.Check)

	// Every unmatched path gets the custom not-found page.
	router.NoRoute(handler.RenderNotFound)

	return router, nil
}
