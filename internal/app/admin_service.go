package app

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Alisacalm/Yatube/internal/model"
	"github.com/Alisacalm/Yatube/internal/pagination"
	"github.com/Alisacalm/Yatube/internal/repository"
)

var (
	ErrNotStaff        = errors.New("user is not a staff member")
	ErrSlugExists      = errors.New("slug already exists")
	ErrCommentNotFound = errors.New("comment not found")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// AdminService backs the administrative JSON API: the only place where
// posts and comments can be deleted and groups created.
type AdminService struct {
	userRepo    *repository.UserRepository
	postRepo    *repository.PostRepository
	commentRepo *repository.CommentRepository
	groupRepo   *repository.GroupRepository
	perPage     int
}

type AdminPostQuery struct {
	Search   string
	AuthorID uint
	GroupID  uint
	Page     int
}

type CreateGroupInput struct {
	Title       string
	Slug        string
	Description string
}

func NewAdminService(
	userRepo *repository.UserRepository,
	postRepo *repository.PostRepository,
	commentRepo *repository.CommentRepository,
	groupRepo *repository.GroupRepository,
	perPage int,
) *AdminService {
	if perPage <= 0 {
		perPage = pagination.DefaultPerPage
	}
	return &AdminService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		groupRepo:   groupRepo,
		perPage:     perPage,
	}
}

// Authenticate verifies credentials and requires the staff flag.
func (s *AdminService) Authenticate(username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}
	if !user.IsStaff {
		return nil, ErrNotStaff
	}
	return user, nil
}

func (s *AdminService) ListPosts(query AdminPostQuery) (*pagination.Page[model.Post], error) {
	filter := repository.PostFilter{
		Search:   strings.TrimSpace(query.Search),
		AuthorID: query.AuthorID,
		GroupID:  query.GroupID,
	}

	total, err := s.postRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	number := pagination.Clamp(query.Page, s.perPage, total)
	posts, err := s.postRepo.List(filter, pagination.Offset(number, s.perPage), s.perPage)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(posts, number, s.perPage, total), nil
}

// DeletePost removes a post and its comments.
func (s *AdminService) DeletePost(id uint) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return s.postRepo.Delete(post.ID)
}

func (s *AdminService) DeleteComment(id uint) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	return s.commentRepo.Delete(comment.ID)
}

func (s *AdminService) CreateGroup(input CreateGroupInput) (*model.Group, error) {
	title := strings.TrimSpace(input.Title)
	slug := strings.TrimSpace(strings.ToLower(input.Slug))
	if title == "" || !slugPattern.MatchString(slug) {
		return nil, ErrInvalidInput
	}

	existing, err := s.groupRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugExists
	}

	group := &model.Group{
		Title:       title,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}
