package app

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Alisacalm/Yatube/internal/media"
	"github.com/Alisacalm/Yatube/internal/model"
	"github.com/Alisacalm/Yatube/internal/repository"
)

type testEnv struct {
	db      *gorm.DB
	posts   *PostService
	follows *FollowService
	auth    *AuthService
	admin   *AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mediaStore, err := media.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("media store: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	return &testEnv{
		db:      db,
		posts:   NewPostService(postRepo, groupRepo, userRepo, commentRepo, followRepo, mediaStore, 10),
		follows: NewFollowService(userRepo, followRepo),
		auth:    NewAuthService(userRepo),
		admin:   NewAdminService(userRepo, postRepo, commentRepo, groupRepo, 10),
	}
}

func (e *testEnv) user(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, PasswordHash: "not-a-real-hash"}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func (e *testEnv) group(t *testing.T, slug string) *model.Group {
	t.Helper()
	group := &model.Group{Title: "Group " + slug, Slug: slug}
	if err := e.db.Create(group).Error; err != nil {
		t.Fatalf("create group %s: %v", slug, err)
	}
	return group
}

func (e *testEnv) post(t *testing.T, author *model.User, text string) *model.Post {
	t.Helper()
	post := &model.Post{Text: text, AuthorID: author.ID}
	if err := e.db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func (e *testEnv) postCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := e.db.Model(&model.Post{}).Count(&count).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	return count
}
