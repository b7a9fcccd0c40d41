package app

import (
	"errors"
	"io"
	"strings"

	"github.com/Alisacalm/Yatube/internal/media"
	"github.com/Alisacalm/Yatube/internal/model"
	"github.com/Alisacalm/Yatube/internal/pagination"
	"github.com/Alisacalm/Yatube/internal/repository"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrPostNotFound  = errors.New("post not found")
	ErrNotAuthor     = errors.New("only the author may edit a post")
	ErrTextEmpty     = errors.New("text must not be empty")
)

type PostService struct {
	postRepo    *repository.PostRepository
	groupRepo   *repository.GroupRepository
	userRepo    *repository.UserRepository
	commentRepo *repository.CommentRepository
	followRepo  *repository.FollowRepository
	media       *media.Store
	perPage     int
}

// ProfileInfo is the profile page header: the author, their post count and
// whether the viewing user follows them.
type ProfileInfo struct {
	Author    *model.User
	PostCount int64
	Following bool
}

type CreatePostInput struct {
	AuthorID  uint
	Text      string
	GroupID   uint // 0 means no group
	ImageName string
	Image     io.Reader // nil means no upload
}

type EditPostInput struct {
	PostID    uint
	EditorID  uint
	Text      string
	GroupID   uint
	ImageName string
	Image     io.Reader
}

func NewPostService(
	postRepo *repository.PostRepository,
	groupRepo *repository.GroupRepository,
	userRepo *repository.UserRepository,
	commentRepo *repository.CommentRepository,
	followRepo *repository.FollowRepository,
	mediaStore *media.Store,
	perPage int,
) *PostService {
	if perPage <= 0 {
		perPage = pagination.DefaultPerPage
	}
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		followRepo:  followRepo,
		media:       mediaStore,
		perPage:     perPage,
	}
}

// FeedPage is the index feed: every post, newest first.
func (s *PostService) FeedPage(page int) (*pagination.Page[model.Post], error) {
	return s.pageFor(repository.PostFilter{}, page)
}

func (s *PostService) GroupFeed(slug string, page int) (*model.Group, *pagination.Page[model.Post], error) {
	group, err := s.groupRepo.GetBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, ErrGroupNotFound
	}

	posts, err := s.pageFor(repository.PostFilter{GroupID: group.ID}, page)
	if err != nil {
		return nil, nil, err
	}
	return group, posts, nil
}

// ProfileFeed renders a user's page. viewerID is zero for guests.
func (s *PostService) ProfileFeed(username string, page int, viewerID uint) (*ProfileInfo, *pagination.Page[model.Post], error) {
	author, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	if author == nil {
		return nil, nil, ErrUserNotFound
	}

	posts, err := s.pageFor(repository.PostFilter{AuthorID: author.ID}, page)
	if err != nil {
		return nil, nil, err
	}

	info := &ProfileInfo{Author: author, PostCount: posts.TotalItems}
	if viewerID != 0 && viewerID != author.ID {
		following, err := s.followRepo.Exists(viewerID, author.ID)
		if err != nil {
			return nil, nil, err
		}
		info.Following = following
	}
	return info, posts, nil
}

// FollowFeed lists posts authored by users the given user follows.
func (s *PostService) FollowFeed(userID uint, page int) (*pagination.Page[model.Post], error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.pageFor(repository.PostFilter{FollowedBy: userID}, page)
}

func (s *PostService) Detail(id uint) (*model.Post, []model.Comment, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.ListByPostID(post.ID)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

func (s *PostService) Create(input CreatePostInput) (*model.Post, error) {
	if input.AuthorID == 0 {
		return nil, ErrInvalidInput
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrTextEmpty
	}

	post := &model.Post{
		Text:     text,
		AuthorID: input.AuthorID,
	}
	if input.GroupID != 0 {
		group, err := s.groupRepo.GetByID(input.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, ErrGroupNotFound
		}
		post.GroupID = &group.ID
	}
	if input.Image != nil {
		imagePath, err := s.media.SavePostImage(input.ImageName, input.Image)
		if err != nil {
			return nil, err
		}
		post.Image = imagePath
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Edit(input EditPostInput) (*model.Post, error) {
	post, err := s.postRepo.GetByID(input.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != input.EditorID {
		return nil, ErrNotAuthor
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrTextEmpty
	}

	post.Text = text
	post.GroupID = nil
	post.Group = nil
	if input.GroupID != 0 {
		group, err := s.groupRepo.GetByID(input.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, ErrGroupNotFound
		}
		post.GroupID = &group.ID
	}
	if input.Image != nil {
		imagePath, err := s.media.SavePostImage(input.ImageName, input.Image)
		if err != nil {
			return nil, err
		}
		post.Image = imagePath
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) AddComment(postID, authorID uint, text string) (*model.Comment, error) {
	if postID == 0 || authorID == 0 {
		return nil, ErrInvalidInput
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextEmpty
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:   post.ID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Groups lists all groups, for the post form's select box.
func (s *PostService) Groups() ([]model.Group, error) {
	return s.groupRepo.List()
}

func (s *PostService) pageFor(filter repository.PostFilter, page int) (*pagination.Page[model.Post], error) {
	total, err := s.postRepo.Count(filter)
	if err != nil {
		return nil, err
	}

	number := pagination.Clamp(page, s.perPage, total)
	posts, err := s.postRepo.List(filter, pagination.Offset(number, s.perPage), s.perPage)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(posts, number, s.perPage, total), nil
}
